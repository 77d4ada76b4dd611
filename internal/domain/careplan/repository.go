package careplan

import (
	"context"

	"github.com/luxepet-health/clinic-api/internal/models"
)

// Repository cubre las dos colecciones del agregado plan+visitas: el
// sincronizador las trata como propiedad conjunta aunque cada escritura
// confirme por separado (no hay transacción multi-documento).
type Repository interface {
	// -------- Plan --------
	CreatePlan(
		ctx context.Context,
		plan *models.CarePlan,
	) error

	// FindPlanByPet regresa (nil, nil) cuando la mascota no tiene plan.
	FindPlanByPet(
		ctx context.Context,
		petID string,
	) (*models.CarePlan, error)

	ListPlansByEmail(
		ctx context.Context,
		email string,
	) ([]models.CarePlan, error)

	UpdatePlan(
		ctx context.Context,
		plan *models.CarePlan,
	) error

	// -------- Citas-visita de la mascota --------
	CreateVisitAppointment(
		ctx context.Context,
		cita *models.Appointment,
	) error

	// DeleteVisitAppointments borra TODAS las citas con estado "visita"
	// de la mascota, sin acotar a las visitas que se reemplazan.
	DeleteVisitAppointments(
		ctx context.Context,
		petID string,
	) error
}
