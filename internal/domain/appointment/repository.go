package appointment

import (
	"context"
	"time"

	"github.com/luxepet-health/clinic-api/internal/models"
)

type Repository interface {
	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		cita *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		cita *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		status string,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// HasAppointmentAt busca una cita de la misma mascota en el instante
	// exacto (no por bloque de hora).
	HasAppointmentAt(
		ctx context.Context,
		petID string,
		at time.Time,
	) (bool, error)

	// -------- Pet (lookup, solo lectura) --------
	FindPetByName(
		ctx context.Context,
		name string,
	) (*models.Pet, error)

	// -------- User --------
	UserExistsByEmail(
		ctx context.Context,
		email string,
	) (bool, error)
}
