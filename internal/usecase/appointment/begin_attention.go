package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
)

type BeginAttention struct {
	repo domain.Repository
}

func NewBeginAttention(repo domain.Repository) *BeginAttention {
	return &BeginAttention{repo: repo}
}

func (uc *BeginAttention) Execute(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	if _, err := uuid.Parse(id); err != nil {
		return nil, httperr.ErrValidation("id_invalido", "ID no válido.")
	}

	cita, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil || cita == nil {
		return nil, httperr.ErrNotFound("cita_no_encontrada", "Cita no encontrada.")
	}

	cita.Status = string(domain.StatusInAttention)

	if err := uc.repo.UpdateAppointment(ctx, cita); err != nil {
		return nil, err
	}

	return cita, nil
}
