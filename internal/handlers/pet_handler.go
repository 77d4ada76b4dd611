package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/httpresp"
	"github.com/luxepet-health/clinic-api/internal/models"
)

// El registro de mascotas es administración simple, sin caso de uso
// aparte: el handler habla directo con la base.
type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type PetRequest struct {
	NombreMascota        string                `json:"nombreMascota"`
	Especie              string                `json:"especie"`
	Raza                 string                `json:"raza"`
	Edad                 int                   `json:"edad"`
	Sexo                 string                `json:"sexo"`
	PesoKg               float64               `json:"pesoKg"`
	FechaNacimiento      time.Time             `json:"fechaNacimiento"`
	Servicios            models.PetServices    `json:"servicios"`
	Alergias             models.PetAllergies   `json:"alergias"`
	Alimentacion         models.PetFeeding     `json:"alimentacion"`
	PersonasRelacionadas models.RelatedPersons `json:"personasRelacionadas"`
	Veterinario          models.Veterinarian   `json:"veterinario"`
}

func (r PetRequest) validate() error {
	if r.NombreMascota == "" || r.Especie == "" || r.Raza == "" || r.Sexo == "" {
		return httperr.ErrValidation("datos_incompletos", "Datos de mascota incompletos.")
	}
	if r.Edad < 0 || r.PesoKg <= 0 {
		return httperr.ErrValidation("datos_invalidos", "Edad o peso no válidos.")
	}
	return nil
}

// nextFolio incrementa el contador en una sola sentencia; dos altas
// concurrentes nunca reciben el mismo número.
func (h *PetHandler) nextFolio() (int64, error) {
	var folio int64
	err := h.db.Raw(
		`UPDATE folio_counters SET value = value + 1 WHERE id = 1 RETURNING value`,
	).Scan(&folio).Error
	return folio, err
}

func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}
	if err := req.validate(); err != nil {
		writeError(c, err, "error_mascota", "Error al crear la mascota.")
		return
	}

	folio, err := h.nextFolio()
	if err != nil {
		writeError(c, err, "error_folio", "Error al asignar el folio.")
		return
	}

	vet := req.Veterinario
	if vet.Clinica == "" {
		vet.Clinica = "Luxepet Health"
	}

	pet := models.Pet{
		ID:             uuid.NewString(),
		FolioNumber:    folio,
		Name:           req.NombreMascota,
		Species:        req.Especie,
		Breed:          req.Raza,
		Age:            req.Edad,
		Sex:            req.Sexo,
		WeightK:        req.PesoKg,
		AdmittedAt:     time.Now().UTC(),
		BornAt:         req.FechaNacimiento,
		Services:       req.Servicios,
		Allergies:      req.Alergias,
		Feeding:        req.Alimentacion,
		RelatedPersons: req.PersonasRelacionadas,
		Veterinarian:   vet,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		writeError(c, err, "error_mascota", "Error al crear la mascota.")
		return
	}

	httpresp.Created(c, pet)
}

func (h *PetHandler) List(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.Order("folio_number ASC").Find(&pets).Error; err != nil {
		writeError(c, err, "error_mascotas", "Error al obtener las mascotas.")
		return
	}
	httpresp.OK(c, pets)
}

// Search hace la misma búsqueda por nombre exacto que usa el agendado
// para resolver la referencia débil.
func (h *PetHandler) Search(c *gin.Context) {
	nombre := c.Query("nombre")
	if nombre == "" {
		httperr.BadRequest(c, "nombre_requerido", "El nombre es requerido.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, "name = ?", nombre).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "mascota_no_encontrada", "Mascota no encontrada.")
			return
		}
		writeError(c, err, "error_mascota", "Error al buscar la mascota.")
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httperr.BadRequest(c, "id_invalido", "ID no válido.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "mascota_no_encontrada", "Mascota no encontrada.")
			return
		}
		writeError(c, err, "error_mascota", "Error al obtener la mascota.")
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httperr.BadRequest(c, "id_invalido", "ID no válido.")
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}
	if err := req.validate(); err != nil {
		writeError(c, err, "error_mascota", "Error al actualizar la mascota.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "mascota_no_encontrada", "Mascota no encontrada.")
			return
		}
		writeError(c, err, "error_mascota", "Error al actualizar la mascota.")
		return
	}

	pet.Name = req.NombreMascota
	pet.Species = req.Especie
	pet.Breed = req.Raza
	pet.Age = req.Edad
	pet.Sex = req.Sexo
	pet.WeightK = req.PesoKg
	pet.BornAt = req.FechaNacimiento
	pet.Services = req.Servicios
	pet.Allergies = req.Alergias
	pet.Feeding = req.Alimentacion
	pet.RelatedPersons = req.PersonasRelacionadas
	pet.Veterinarian = req.Veterinario

	if err := h.db.Save(&pet).Error; err != nil {
		writeError(c, err, "error_mascota", "Error al actualizar la mascota.")
		return
	}
	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		httperr.BadRequest(c, "id_invalido", "ID no válido.")
		return
	}

	res := h.db.Delete(&models.Pet{}, "id = ?", id)
	if res.Error != nil {
		writeError(c, res.Error, "error_mascota", "Error al eliminar la mascota.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "mascota_no_encontrada", "Mascota no encontrada.")
		return
	}
	httpresp.OK(c, gin.H{"message": "Mascota eliminada con éxito"})
}
