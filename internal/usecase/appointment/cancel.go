package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luxepet-health/clinic-api/internal/audit"
	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/notify"
)

type Cancel struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Recorder
}

func NewCancel(
	repo domain.Repository,
	notifier notify.Notifier,
	auditor audit.Recorder,
) *Cancel {
	return &Cancel{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *Cancel) Execute(ctx context.Context, id string) error {

	if _, err := uuid.Parse(id); err != nil {
		return httperr.ErrValidation("id_invalido", "ID no válido.")
	}

	cita, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil || cita == nil {
		return httperr.ErrNotFound("cita_no_encontrada", "Cita no encontrada.")
	}

	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		return err
	}

	uc.notifier.Dispatch(notify.Event{
		Kind:        notify.KindCancelled,
		Appointment: *cita,
		DeletedAt:   time.Now().UTC(),
	})

	uc.audit.Dispatch(audit.Event{
		ActorEmail: cita.ContactEmail,
		Action:     "cita_eliminada",
		Entity:     "cita",
		EntityID:   cita.ID,
	})

	return nil
}
