package careplan

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/luxepet-health/clinic-api/internal/domain/careplan"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
)

type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

// ByPet distingue entrada malformada (error) de mascota sin plan
// (nil, nil): la ausencia de plan es una respuesta válida.
func (q *Queries) ByPet(ctx context.Context, petID string) (*models.CarePlan, error) {
	if _, err := uuid.Parse(petID); err != nil {
		return nil, httperr.ErrValidation("id_invalido", "El idMascota no es válido.")
	}
	return q.repo.FindPlanByPet(ctx, petID)
}

func (q *Queries) ByOwnerEmail(ctx context.Context, email string) ([]models.CarePlan, error) {
	planes, err := q.repo.ListPlansByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(planes) == 0 {
		return nil, httperr.ErrNotFound(
			"sin_planes",
			"No se encontraron planes de cuidado.",
		)
	}
	return planes, nil
}
