package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	citadomain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	domain "github.com/luxepet-health/clinic-api/internal/domain/careplan"
	"github.com/luxepet-health/clinic-api/internal/models"
)

type CarePlanGormRepository struct {
	db *gorm.DB
}

func NewCarePlanGormRepository(db *gorm.DB) *CarePlanGormRepository {
	return &CarePlanGormRepository{db: db}
}

// --------------------------------------------------
// Plan
// --------------------------------------------------

func (r *CarePlanGormRepository) CreatePlan(
	ctx context.Context,
	plan *models.CarePlan,
) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *CarePlanGormRepository) FindPlanByPet(
	ctx context.Context,
	petID string,
) (*models.CarePlan, error) {

	var plan models.CarePlan
	if err := r.db.WithContext(ctx).
		First(&plan, "pet_id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *CarePlanGormRepository) ListPlansByEmail(
	ctx context.Context,
	email string,
) ([]models.CarePlan, error) {

	var planes []models.CarePlan
	if err := r.db.WithContext(ctx).
		Where("owner_email = ?", email).
		Find(&planes).Error; err != nil {
		return nil, err
	}
	return planes, nil
}

func (r *CarePlanGormRepository) UpdatePlan(
	ctx context.Context,
	plan *models.CarePlan,
) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// --------------------------------------------------
// Citas-visita (segunda colección del agregado)
// --------------------------------------------------

func (r *CarePlanGormRepository) CreateVisitAppointment(
	ctx context.Context,
	cita *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(cita).Error
}

func (r *CarePlanGormRepository) DeleteVisitAppointments(
	ctx context.Context,
	petID string,
) error {
	return r.db.WithContext(ctx).
		Where("pet_id = ? AND status = ?", petID, string(citadomain.StatusVisit)).
		Delete(&models.Appointment{}).Error
}

// Compile-time check
var _ domain.Repository = (*CarePlanGormRepository)(nil)
