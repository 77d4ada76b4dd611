package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/luxepet-health/clinic-api/internal/audit"
	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/notify"
	"github.com/luxepet-health/clinic-api/internal/timezone"
	"github.com/luxepet-health/clinic-api/internal/validators"
)

type EditInput struct {
	ID         string
	Cliente    string
	Fecha      string
	Hora       string
	Correo     string
	Comentario string
	Servicios  models.ServiceItems
}

type Edit struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Recorder
}

func NewEdit(
	repo domain.Repository,
	notifier notify.Notifier,
	auditor audit.Recorder,
) *Edit {
	return &Edit{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *Edit) Execute(
	ctx context.Context,
	in EditInput,
) (*models.Appointment, error) {

	if _, err := uuid.Parse(in.ID); err != nil {
		return nil, httperr.ErrValidation("id_invalido", "ID no válido.")
	}

	if in.Cliente == "" || in.Fecha == "" || in.Hora == "" || in.Correo == "" {
		return nil, httperr.ErrValidation(
			"datos_incompletos",
			"Datos de cita incompletos.",
		)
	}

	if !validators.IsEmailFormatValid(in.Correo) {
		return nil, httperr.ErrValidation(
			"correo_invalido",
			"El correo no tiene un formato válido.",
		)
	}

	start, err := timezone.ParseDateTime(in.Fecha, in.Hora)
	if err != nil || start.Before(timezone.Now()) {
		return nil, httperr.ErrValidation(
			"fecha_invalida",
			"Fecha y hora no válidas o en el pasado.",
		)
	}

	cita, err := uc.repo.GetAppointmentByID(ctx, in.ID)
	if err != nil || cita == nil {
		return nil, httperr.ErrNotFound("cita_no_encontrada", "Cita no encontrada.")
	}

	previa := *cita

	servicios := in.Servicios
	if servicios == nil {
		servicios = models.ServiceItems{}
	}

	// La edición nunca toca el estado; los servicios se reemplazan
	// completos.
	cita.ClientName = in.Cliente
	cita.ContactEmail = in.Correo
	cita.ScheduledAt = start
	cita.Note = in.Comentario
	cita.Services = servicios

	if err := uc.repo.UpdateAppointment(ctx, cita); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Kind:        notify.KindRescheduled,
		Appointment: *cita,
		Previous:    &previa,
	})

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.Correo,
		Action:     "cita_editada",
		Entity:     "cita",
		EntityID:   cita.ID,
	})

	return cita, nil
}
