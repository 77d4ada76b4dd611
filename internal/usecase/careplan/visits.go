package careplan

import (
	"context"

	"github.com/google/uuid"

	citadomain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	domain "github.com/luxepet-health/clinic-api/internal/domain/careplan"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

type VisitInput struct {
	Fecha       string `json:"fecha"`
	Hora        string `json:"hora"`
	Descripcion string `json:"descripcion"`
}

func validateVisits(visitas []VisitInput) error {
	for _, v := range visitas {
		if v.Fecha == "" || v.Hora == "" || v.Descripcion == "" {
			return httperr.ErrValidation(
				"visitas_incompletas",
				"Todas las visitas deben incluir fecha, hora y descripción.",
			)
		}
	}
	return nil
}

// createVisitAppointments persiste una cita-visita por cada entrada y
// regresa la proyección {fecha, descripcion} construida desde las citas
// ya guardadas, no desde la entrada cruda: la fecha almacenada en el
// plan siempre es el instante persistido.
//
// Cada inserción confirma por separado; un fallo a medias deja las
// citas anteriores creadas (sin rollback).
func createVisitAppointments(
	ctx context.Context,
	repo domain.Repository,
	petID string,
	visitas []VisitInput,
	ownerName string,
	ownerEmail string,
) (models.PlanVisits, error) {

	projection := make(models.PlanVisits, 0, len(visitas))

	for _, v := range visitas {
		start, err := timezone.ParseDateTime(v.Fecha, v.Hora)
		if err != nil {
			return nil, httperr.ErrValidation(
				"fecha_invalida",
				"Fecha y hora no válidas.",
			)
		}

		pid := petID
		cita := &models.Appointment{
			ID:           uuid.NewString(),
			PetID:        &pid,
			ClientName:   ownerName,
			ContactEmail: ownerEmail,
			ScheduledAt:  start,
			Note:         v.Descripcion,
			Status:       string(citadomain.StatusVisit),
			Services:     models.ServiceItems{},
		}

		if err := repo.CreateVisitAppointment(ctx, cita); err != nil {
			return nil, err
		}

		projection = append(projection, models.PlanVisit{
			Fecha:       cita.ScheduledAt,
			Descripcion: cita.Note,
		})
	}

	return projection, nil
}
