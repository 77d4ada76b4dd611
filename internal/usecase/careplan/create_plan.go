package careplan

import (
	"context"

	"github.com/google/uuid"

	"github.com/luxepet-health/clinic-api/internal/audit"
	domain "github.com/luxepet-health/clinic-api/internal/domain/careplan"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type PlanInput struct {
	IDMascota     string
	Dieta         string
	Ejercicio     string
	Visitas       []VisitInput
	CorreoDueno   string
	NombreDueno   string
	NombreMascota string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePlanWithVisits crea el plan junto con sus citas-visita: N
// inserciones de cita y una de plan, cada una confirmando por separado.
// Un fallo a medias deja citas-visita huérfanas sin plan; ese hueco de
// consistencia es comportamiento aceptado, no un descuido.
type CreatePlanWithVisits struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreatePlanWithVisits(
	repo domain.Repository,
	auditor audit.Recorder,
) *CreatePlanWithVisits {
	return &CreatePlanWithVisits{
		repo:  repo,
		audit: auditor,
	}
}

func (uc *CreatePlanWithVisits) Execute(
	ctx context.Context,
	in PlanInput,
) (*models.CarePlan, error) {

	if in.IDMascota == "" || in.Dieta == "" || in.Ejercicio == "" ||
		in.CorreoDueno == "" || in.NombreDueno == "" || in.NombreMascota == "" {
		return nil, httperr.ErrValidation(
			"campos_obligatorios",
			"Todos los campos son obligatorios.",
		)
	}

	if err := validateVisits(in.Visitas); err != nil {
		return nil, err
	}

	// Arreglo vacío es válido: un plan sin visitas.
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

	plan, err := domain.NewBuilder().
		PetID(in.IDMascota).
		Diet(in.Dieta).
		Exercise(in.Ejercicio).
		OwnerEmail(in.CorreoDueno).
		OwnerName(in.NombreDueno).
		PetName(in.NombreMascota).
		Visits(visitas).
		Build()
	if err != nil {
		return nil, err
	}

	plan.ID = uuid.NewString()

	if err := uc.repo.CreatePlan(ctx, plan); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.CorreoDueno,
		Action:     "plan_creado",
		Entity:     "plan_cuidado",
		EntityID:   plan.ID,
		Metadata:   map[string]int{"visitas": len(visitas)},
	})

	return plan, nil
}
