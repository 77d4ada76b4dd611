package appointment

import (
	"context"

	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	fecha string,
) (*domain.Availability, error) {

	if fecha == "" {
		return nil, httperr.ErrValidation("fecha_requerida", "La fecha es requerida.")
	}

	date, err := timezone.ParseDate(fecha)
	if err != nil {
		return nil, httperr.ErrValidation("fecha_invalida", "Fecha no válida.")
	}

	start, end := domain.DayBounds(date)

	citas, err := uc.repo.ListAppointmentsForDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		Fecha:            fecha,
		HorasDisponibles: domain.FreeHours(citas),
	}, nil
}
