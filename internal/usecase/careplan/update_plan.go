package careplan

import (
	"context"

	"github.com/google/uuid"

	"github.com/luxepet-health/clinic-api/internal/audit"
	domain "github.com/luxepet-health/clinic-api/internal/domain/careplan"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
)

type UpdateResult struct {
	Plan  *models.CarePlan  `json:"plan"`
	Citas models.PlanVisits `json:"citas"`
}

// UpdatePlanWithVisits reemplaza las visitas del plan: borra TODAS las
// citas-visita de la mascota, crea el juego nuevo y recién entonces
// busca el plan. Si no hay plan, el borrado y las citas nuevas ya
// quedaron confirmados; se regresa no-encontrado igual.
type UpdatePlanWithVisits struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdatePlanWithVisits(
	repo domain.Repository,
	auditor audit.Recorder,
) *UpdatePlanWithVisits {
	return &UpdatePlanWithVisits{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *UpdatePlanWithVisits) Execute(
	ctx context.Context,
	in PlanInput,
) (*UpdateResult, error) {

	if in.IDMascota == "" {
		return nil, httperr.ErrValidation(
			"id_mascota_obligatorio",
			"El idMascota es obligatorio.",
		)
	}
	if _, err := uuid.Parse(in.IDMascota); err != nil {
		return nil, httperr.ErrValidation("id_invalido", "ID no válido.")
	}

	// El borrado ocurre siempre que el id sea estructuralmente válido,
	// se encuentre o no un plan después.
	if err := uc.repo.DeleteVisitAppointments(ctx, in.IDMascota); err != nil {
		return nil, err
	}

	if err := validateVisits(in.Visitas); err != nil {
		return nil, err
	}

	visitas, err := createVisitAppointments(
		ctx,
		uc.repo,
		in.IDMascota,
		in.Visitas,
		in.NombreDueno,
		in.CorreoDueno,
	)
	if err != nil {
		return nil, err
	}

	plan, err := uc.repo.FindPlanByPet(ctx, in.IDMascota)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, httperr.ErrNotFound(
			"plan_no_encontrado",
			"No se encontró un plan para actualizar.",
		)
	}

	plan.Diet = in.Dieta
	plan.Exercise = in.Ejercicio
	plan.Visits = visitas
	plan.OwnerEmail = in.CorreoDueno
	plan.OwnerName = in.NombreDueno
	plan.PetName = in.NombreMascota

	if err := uc.repo.UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.CorreoDueno,
		Action:     "plan_actualizado",
		Entity:     "plan_cuidado",
		EntityID:   plan.ID,
		Metadata:   map[string]int{"visitas": len(visitas)},
	})

	return &UpdateResult{Plan: plan, Citas: visitas}, nil
}
