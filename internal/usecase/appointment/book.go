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
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	Cliente       string
	Fecha         string
	Hora          string
	Correo        string
	Comentario    string
	MascotaNombre string
	Servicios     models.ServiceItems
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Recorder
}

func NewBook(
	repo domain.Repository,
	notifier notify.Notifier,
	auditor audit.Recorder,
) *Book {
	return &Book{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	if in.Cliente == "" || in.Fecha == "" || in.Hora == "" || in.Correo == "" {
		return nil, httperr.ErrValidation(
			"datos_incompletos",
			"Datos de cita incompletos.",
		)
	}

	// Fecha + hora en la zona de la clínica
	start, err := timezone.ParseDateTime(in.Fecha, in.Hora)
	if err != nil {
		return nil, httperr.ErrValidation(
			"fecha_invalida",
			"Fecha y hora no válidas.",
		)
	}

	// Resolución opcional de mascota por nombre exacto: si no resuelve,
	// la referencia queda en null y no es un error.
	var petID *string
	if in.MascotaNombre != "" {
		if pet, err := uc.repo.FindPetByName(ctx, in.MascotaNombre); err == nil && pet != nil {
			petID = &pet.ID
		}
	}

	servicios := in.Servicios
	if servicios == nil {
		servicios = models.ServiceItems{}
	}

	// El agendado directo NO revisa disponibilidad: el calculador de
	// horas libres es informativo y dos citas pueden coexistir en la
	// misma hora.
	cita := &models.Appointment{
		ID:           uuid.NewString(),
		PetID:        petID,
		ClientName:   in.Cliente,
		ContactEmail: in.Correo,
		ScheduledAt:  start,
		Note:         in.Comentario,
		Status:       string(domain.InitialStatus()),
		Services:     servicios,
	}

	if err := uc.repo.CreateAppointment(ctx, cita); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Kind:        notify.KindBooked,
		Appointment: *cita,
	})

	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.Correo,
		Action:     "cita_agendada",
		Entity:     "cita",
		EntityID:   cita.ID,
	})

	return cita, nil
}
