package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/httperr"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

// Queries agrupa las lecturas puras de citas.
type Queries struct {
	repo domain.Repository
}

func NewQueries(repo domain.Repository) *Queries {
	return &Queries{repo: repo}
}

func (q *Queries) ByID(ctx context.Context, id string) (*models.Appointment, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, httperr.ErrValidation("id_invalido", "ID no válido.")
	}

	cita, err := q.repo.GetAppointmentByID(ctx, id)
	if err != nil || cita == nil {
		return nil, httperr.ErrNotFound("cita_no_encontrada", "Cita no encontrada.")
	}
	return cita, nil
}

func (q *Queries) ByStatus(ctx context.Context, estado string) ([]models.Appointment, error) {
	if !domain.IsValidStatus(domain.Status(estado)) {
		return nil, httperr.ErrValidation("estado_invalido", "Estado no válido.")
	}
	return q.repo.ListAppointmentsByStatus(ctx, estado)
}

func (q *Queries) ByDate(ctx context.Context, fecha string) ([]models.Appointment, error) {
	date, err := timezone.ParseDate(fecha)
	if err != nil {
		return nil, httperr.ErrValidation("fecha_invalida", "Fecha no válida.")
	}

	start, end := domain.DayBounds(date)
	return q.repo.ListAppointmentsForDay(ctx, start, end)
}

// ByOwnerEmail exige que exista un usuario con ese correo y trata el
// resultado vacío como no-encontrado.
func (q *Queries) ByOwnerEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	exists, err := q.repo.UserExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound("usuario_no_encontrado", "Usuario no encontrado.")
	}

	citas, err := q.repo.ListAppointmentsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(citas) == 0 {
		return nil, httperr.ErrNotFound("sin_citas", "No se encontraron citas.")
	}
	return citas, nil
}

func (q *Queries) All(ctx context.Context) ([]models.Appointment, error) {
	return q.repo.ListAllAppointments(ctx)
}
