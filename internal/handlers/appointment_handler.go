package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luxepet-health/clinic-api/internal/httpresp"
	"github.com/luxepet-health/clinic-api/internal/models"
	ucAppointment "github.com/luxepet-health/clinic-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book           *ucAppointment.Book
	edit           *ucAppointment.Edit
	cancel         *ucAppointment.Cancel
	beginAttention *ucAppointment.BeginAttention
	editStatus     *ucAppointment.EditStatus
	addVisit       *ucAppointment.AddVisit
	availability   *ucAppointment.GetAvailability
	queries        *ucAppointment.Queries
}

func NewAppointmentHandler(
	book *ucAppointment.Book,
	edit *ucAppointment.Edit,
	cancel *ucAppointment.Cancel,
	beginAttention *ucAppointment.BeginAttention,
	editStatus *ucAppointment.EditStatus,
	addVisit *ucAppointment.AddVisit,
	availability *ucAppointment.GetAvailability,
	queries *ucAppointment.Queries,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:           book,
		edit:           edit,
		cancel:         cancel,
		beginAttention: beginAttention,
		editStatus:     editStatus,
		addVisit:       addVisit,
		availability:   availability,
		queries:        queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	Cliente       string              `json:"cliente"`
	Fecha         string              `json:"fecha"`
	Hora          string              `json:"hora"`
	Correo        string              `json:"correo"`
	Comentario    string              `json:"comentario"`
	MascotaNombre string              `json:"mascotaNombre"`
	Servicios     models.ServiceItems `json:"servicios"`
}

type EditRequest struct {
	Cliente    string              `json:"cliente"`
	Fecha      string              `json:"fecha"`
	Hora       string              `json:"hora"`
	Correo     string              `json:"correo"`
	Comentario string              `json:"comentario"`
	Servicios  models.ServiceItems `json:"servicios"`
}

type EditStatusRequest struct {
	Estado    string `json:"estado"`
	IDMascota string `json:"idMascota"`
}

type AddVisitRequest struct {
	IDMascota   string `json:"idMascota"`
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
	Descripcion string `json:"descripcion"`
	NombreDueno string `json:"nombreDueno"`
	CorreoDueno string `json:"correoDueno"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}

	cita, err := h.book.Execute(c.Request.Context(), ucAppointment.BookInput{
		Cliente:       req.Cliente,
		Fecha:         req.Fecha,
		Hora:          req.Hora,
		Correo:        req.Correo,
		Comentario:    req.Comentario,
		MascotaNombre: req.MascotaNombre,
		Servicios:     req.Servicios,
	})
	if err != nil {
		writeError(c, err, "error_agendar", "Error al agendar la cita.")
		return
	}

	httpresp.Created(c, cita)
}

func (h *AppointmentHandler) Edit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}

	cita, err := h.edit.Execute(c.Request.Context(), ucAppointment.EditInput{
		ID:         c.Param("id"),
		Cliente:    req.Cliente,
		Fecha:      req.Fecha,
		Hora:       req.Hora,
		Correo:     req.Correo,
		Comentario: req.Comentario,
		Servicios:  req.Servicios,
	})
	if err != nil {
		writeError(c, err, "error_editar", "Error al editar la cita.")
		return
	}

	httpresp.OK(c, cita)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	if err := h.cancel.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, "error_eliminar", "Error al eliminar la cita.")
		return
	}

	httpresp.OK(c, gin.H{"message": "Cita eliminada con éxito"})
}

func (h *AppointmentHandler) BeginAttention(c *gin.Context) {
	cita, err := h.beginAttention.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "error_estado", "Error al actualizar estado.")
		return
	}

	httpresp.OK(c, cita)
}

func (h *AppointmentHandler) EditStatus(c *gin.Context) {
	var req EditStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}

	cita, err := h.editStatus.Execute(c.Request.Context(), ucAppointment.EditStatusInput{
		ID:        c.Param("id"),
		Estado:    req.Estado,
		IDMascota: req.IDMascota,
	})
	if err != nil {
		writeError(c, err, "error_estado", "Error al actualizar estado.")
		return
	}

	httpresp.OK(c, cita)
}

func (h *AppointmentHandler) AddVisit(c *gin.Context) {
	var req AddVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}

	cita, err := h.addVisit.Execute(c.Request.Context(), ucAppointment.AddVisitInput{
		IDMascota:   req.IDMascota,
		Fecha:       req.Fecha,
		Hora:        req.Hora,
		Descripcion: req.Descripcion,
		NombreDueno: req.NombreDueno,
		CorreoDueno: req.CorreoDueno,
	})
	if err != nil {
		writeError(c, err, "error_visita", "Error al agregar la visita.")
		return
	}

	httpresp.Created(c, cita)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	disponibilidad, err := h.availability.Execute(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		writeError(c, err, "error_disponibilidad", "Error al obtener la disponibilidad.")
		return
	}

	httpresp.OK(c, disponibilidad)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	cita, err := h.queries.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, "error_obtener", "Error al obtener la cita.")
		return
	}

	httpresp.OK(c, cita)
}

func (h *AppointmentHandler) ListByStatus(c *gin.Context) {
	citas, err := h.queries.ByStatus(c.Request.Context(), c.Param("estado"))
	if err != nil {
		writeError(c, err, "error_listar", "Error al obtener las citas.")
		return
	}

	httpresp.OK(c, citas)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	citas, err := h.queries.ByDate(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		writeError(c, err, "error_listar", "Error al obtener las citas.")
		return
	}

	httpresp.OK(c, citas)
}

func (h *AppointmentHandler) ListByEmail(c *gin.Context) {
	citas, err := h.queries.ByOwnerEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err, "error_listar", "Error al obtener las citas.")
		return
	}

	httpresp.OK(c, citas)
}

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	citas, err := h.queries.All(c.Request.Context())
	if err != nil {
		writeError(c, err, "error_listar", "Error al obtener todas las citas.")
		return
	}

	httpresp.OK(c, citas)
}

func httpErrBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error_code": "invalid_request",
		"message":    "Cuerpo de la petición no válido.",
	})
}
