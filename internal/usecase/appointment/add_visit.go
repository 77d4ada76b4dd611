package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

type AddVisitInput struct {
	IDMascota   string
	Fecha       string
	Hora        string
	Descripcion string
	NombreDueno string
	CorreoDueno string
}

// AddVisit agenda una cita de seguimiento (estado "visita") fuera del
// plan de cuidado.
type AddVisit struct {
	repo domain.Repository
}

func NewAddVisit(repo domain.Repository) *AddVisit {
	return &AddVisit{repo: repo}
}

func (uc *AddVisit) Execute(
	ctx context.Context,
	in AddVisitInput,
) (*models.Appointment, error) {

	if in.IDMascota == "" || in.Fecha == "" || in.Hora == "" ||
		in.Descripcion == "" || in.NombreDueno == "" || in.CorreoDueno == "" {
		return nil, httperr.ErrValidation(
			"datos_incompletos",
			"Todas las visitas deben incluir mascota, fecha, hora y descripción.",
		)
	}

	if _, err := uuid.Parse(in.IDMascota); err != nil {
		return nil, httperr.ErrValidation("id_invalido", "ID no válido.")
	}

	start, err := timezone.ParseDateTime(in.Fecha, in.Hora)
	if err != nil {
		return nil, httperr.ErrValidation("fecha_invalida", "Fecha y hora no válidas.")
	}

	// Unicidad al instante exacto por mascota, más estricta que el
	// bloque por hora del calculador de disponibilidad.
	exists, err := uc.repo.HasAppointmentAt(ctx, in.IDMascota, start)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrConflict(
			"visita_duplicada",
			"Ya existe una cita para esta mascota en esa fecha y hora.",
		)
	}

	petID := in.IDMascota
	cita := &models.Appointment{
		ID:           uuid.NewString(),
		PetID:        &petID,
		ClientName:   in.NombreDueno,
		ContactEmail: in.CorreoDueno,
		ScheduledAt:  start,
		Note:         in.Descripcion,
		Status:       string(domain.StatusVisit),
		Services:     models.ServiceItems{},
	}

	if err := uc.repo.CreateAppointment(ctx, cita); err != nil {
		return nil, err
	}

	return cita, nil
}
