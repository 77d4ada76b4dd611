package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/luxepet-health/clinic-api/internal/domain/appointment"
	"github.com/luxepet-health/clinic-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	cita *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(cita).Error
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	cita *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(cita).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, "id = ?", id).Error
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var cita models.Appointment
	if err := r.db.WithContext(ctx).
		First(&cita, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cita, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	status string,
) ([]models.Appointment, error) {

	var citas []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("scheduled_at ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var citas []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("scheduled_at >= ? AND scheduled_at < ?", start, end).
		Order("scheduled_at ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByEmail(
	ctx context.Context,
	email string,
) ([]models.Appointment, error) {

	var citas []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("contact_email = ?", email).
		Order("scheduled_at ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *AppointmentGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var citas []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("scheduled_at ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *AppointmentGormRepository) HasAppointmentAt(
	ctx context.Context,
	petID string,
	at time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("pet_id = ? AND scheduled_at = ?", petID, at).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Pet / User lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) FindPetByName(
	ctx context.Context,
	name string,
) (*models.Pet, error) {

	var pet models.Pet
	if err := r.db.WithContext(ctx).
		First(&pet, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *AppointmentGormRepository) UserExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
