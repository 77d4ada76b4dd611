package careplan

import (
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
)

// Builder arma un plan de cuidado paso a paso y valida en Build que los
// campos obligatorios estén presentes, aunque la ruta ya los haya
// revisado antes.
type Builder struct {
	plan models.CarePlan
}

func NewBuilder() *Builder {
	return &Builder{
		plan: models.CarePlan{Visits: models.PlanVisits{}},
	}
}

func (b *Builder) PetID(id string) *Builder {
	b.plan.PetID = id
	return b
}

func (b *Builder) Diet(diet string) *Builder {
	b.plan.Diet = diet
	return b
}

func (b *Builder) Exercise(exercise string) *Builder {
	b.plan.Exercise = exercise
	return b
}

func (b *Builder) OwnerEmail(email string) *Builder {
	b.plan.OwnerEmail = email
	return b
}

func (b *Builder) OwnerName(name string) *Builder {
	b.plan.OwnerName = name
	return b
}

func (b *Builder) PetName(name string) *Builder {
	b.plan.PetName = name
	return b
}

func (b *Builder) Visits(visits models.PlanVisits) *Builder {
	if visits == nil {
		visits = models.PlanVisits{}
	}
	b.plan.Visits = visits
	return b
}

func (b *Builder) Build() (*models.CarePlan, error) {
	if b.plan.PetID == "" ||
		b.plan.Diet == "" ||
		b.plan.Exercise == "" ||
		b.plan.OwnerEmail == "" ||
		b.plan.OwnerName == "" ||
		b.plan.PetName == "" {
		return nil, httperr.ErrValidation(
			"plan_incompleto",
			"Faltan campos obligatorios para crear un plan de cuidado.",
		)
	}

	plan := b.plan
	return &plan, nil
}
