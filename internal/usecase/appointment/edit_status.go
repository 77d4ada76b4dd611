package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/luxepet-health/clinic-api/internal/audit"
	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/notify"
)

type EditStatusInput struct {
	ID     string
	Estado string

	// Referencia de mascota a adjuntar o limpiar: vacío normaliza a
	// "sin referencia", no es un error.
	IDMascota string
}

type EditStatus struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Recorder
}

func NewEditStatus(
	repo domain.Repository,
	notifier notify.Notifier,
	auditor audit.Recorder,
) *EditStatus {
	return &EditStatus{
		repo:     repo,
		notifier: notifier,
		audit:    auditor,
	}
}

func (uc *EditStatus) Execute(
	ctx context.Context,
	in EditStatusInput,
) (*models.Appointment, error) {

	if _, err := uuid.Parse(in.ID); err != nil {
		return nil, httperr.ErrValidation("id_invalido", "ID no válido.")
	}

	if !domain.IsValidStatus(domain.Status(in.Estado)) {
		return nil, httperr.ErrValidation("estado_invalido", "Estado no válido.")
	}

	var petID *string
	if in.IDMascota != "" {
		if _, err := uuid.Parse(in.IDMascota); err != nil {
			return nil, httperr.ErrValidation("id_mascota_invalido", "ID de mascota no válido.")
		}
		id := in.IDMascota
		petID = &id
	}

	cita, err := uc.repo.GetAppointmentByID(ctx, in.ID)
	if err != nil || cita == nil {
		return nil, httperr.ErrNotFound("cita_no_encontrada", "Cita no encontrada.")
	}

	cita.Status = in.Estado
	cita.PetID = petID

	if err := uc.repo.UpdateAppointment(ctx, cita); err != nil {
		return nil, err
	}

	// El aviso de "atendida" se intenta exactamente una vez; su suerte
	// no afecta la cita devuelta.
	if domain.Status(in.Estado) == domain.StatusAttended {
		uc.notifier.Dispatch(notify.Event{
			Kind:        notify.KindAttended,
			Appointment: *cita,
		})
	}

	uc.audit.Dispatch(audit.Event{
		ActorEmail: cita.ContactEmail,
		Action:     "cita_estado_editado",
		Entity:     "cita",
		EntityID:   cita.ID,
		Metadata:   map[string]string{"estado": in.Estado},
	})

	return cita, nil
}
