package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luxepet-health/clinic-api/internal/httpresp"
	ucCareplan "github.com/luxepet-health/clinic-api/internal/usecase/careplan"
)

type CarePlanHandler struct {
	create  *ucCareplan.CreatePlanWithVisits
	update  *ucCareplan.UpdatePlanWithVisits
	queries *ucCareplan.Queries
}

func NewCarePlanHandler(
	create *ucCareplan.CreatePlanWithVisits,
	update *ucCareplan.UpdatePlanWithVisits,
	queries *ucCareplan.Queries,
) *CarePlanHandler {
	return &CarePlanHandler{
		create:  create,
		update:  update,
		queries: queries,
	}
}

type PlanRequest struct {
	IDMascota     string                  `json:"idMascota"`
	Dieta         string                  `json:"dieta"`
	Ejercicio     string                  `json:"ejercicio"`
	Visitas       []ucCareplan.VisitInput `json:"visitas"`
	CorreoDueno   string                  `json:"correoDueno"`
	NombreDueno   string                  `json:"nombreDueno"`
	NombreMascota string                  `json:"nombreMascota"`
}

func (r PlanRequest) toInput(petID string) ucCareplan.PlanInput {
	id := r.IDMascota
	if petID != "" {
		id = petID
	}
	return ucCareplan.PlanInput{
		IDMascota:     id,
		Dieta:         r.Dieta,
		Ejercicio:     r.Ejercicio,
		Visitas:       r.Visitas,
		CorreoDueno:   r.CorreoDueno,
		NombreDueno:   r.NombreDueno,
		NombreMascota: r.NombreMascota,
	}
}

func (h *CarePlanHandler) CreateWithVisits(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}

	plan, err := h.create.Execute(c.Request.Context(), req.toInput(""))
	if err != nil {
		writeError(c, err, "error_plan", "Error interno del servidor.")
		return
	}

	httpresp.Created(c, plan)
}

func (h *CarePlanHandler) UpdateWithVisits(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErrBadBody(c)
		return
	}

	result, err := h.update.Execute(c.Request.Context(), req.toInput(c.Param("idMascota")))
	if err != nil {
		writeError(c, err, "error_plan", "Error interno del servidor.")
		return
	}

	httpresp.OK(c, gin.H{"plan": result.Plan, "citas": result.Citas})
}

// GetByPet responde 200 con null cuando la mascota no tiene plan: la
// ausencia de plan no es un error, solo un id malformado lo es.
func (h *CarePlanHandler) GetByPet(c *gin.Context) {
	plan, err := h.queries.ByPet(c.Request.Context(), c.Param("idMascota"))
	if err != nil {
		writeError(c, err, "error_plan", "Error al obtener el plan de cuidado.")
		return
	}

	if plan == nil {
		httpresp.OK(c, nil)
		return
	}
	httpresp.OK(c, plan)
}

func (h *CarePlanHandler) ListByEmail(c *gin.Context) {
	planes, err := h.queries.ByOwnerEmail(c.Request.Context(), c.Query("correo"))
	if err != nil {
		writeError(c, err, "error_plan", "Error interno del servidor.")
		return
	}

	httpresp.OK(c, planes)
}
