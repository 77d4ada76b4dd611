package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/luxepet-health/clinic-api/internal/audit"
	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/notify"
)

// -------------------------
// Fake repo (in-memory)
// -------------------------

type fakeRepo struct {
	citas map[string]models.Appointment
	pets  map[string]models.Pet // por nombre
	users map[string]bool       // por email
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		citas: map[string]models.Appointment{},
		pets:  map[string]models.Pet{},
		users: map[string]bool{},
	}
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, cita *models.Appointment) error {
	if cita.ID == "" {
		return errors.New("repo: id required")
	}
	r.citas[cita.ID] = *cita
	return nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, cita *models.Appointment) error {
	if _, ok := r.citas[cita.ID]; !ok {
		return errors.New("repo: not found")
	}
	r.citas[cita.ID] = *cita
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, id string) error {
	delete(r.citas, id)
	return nil
}

func (r *fakeRepo) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	cita, ok := r.citas[id]
	if !ok {
		return nil, nil
	}
	return &cita, nil
}

func (r *fakeRepo) ListAppointmentsByStatus(ctx context.Context, status string) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, cita := range r.citas {
		if cita.Status == status {
			out = append(out, cita)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDay(ctx context.Context, start, end time.Time) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, cita := range r.citas {
		if !cita.ScheduledAt.Before(start) && cita.ScheduledAt.Before(end) {
			out = append(out, cita)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsByEmail(ctx context.Context, email string) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, cita := range r.citas {
		if cita.ContactEmail == email {
			out = append(out, cita)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.citas))
	for _, cita := range r.citas {
		out = append(out, cita)
	}
	return out, nil
}

func (r *fakeRepo) HasAppointmentAt(ctx context.Context, petID string, at time.Time) (bool, error) {
	for _, cita := range r.citas {
		if cita.PetID != nil && *cita.PetID == petID && cita.ScheduledAt.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) FindPetByName(ctx context.Context, name string) (*models.Pet, error) {
	pet, ok := r.pets[name]
	if !ok {
		return nil, nil
	}
	return &pet, nil
}

func (r *fakeRepo) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.users[email], nil
}

// -------------------------
// Fake notifier / audit
// -------------------------

type fakeNotifier struct {
	events []notify.Event
}

func (n *fakeNotifier) Dispatch(ev notify.Event) {
	n.events = append(n.events, ev)
}

func (n *fakeNotifier) count(kind notify.Kind) int {
	total := 0
	for _, ev := range n.events {
		if ev.Kind == kind {
			total++
		}
	}
	return total
}

type fakeAudit struct {
	events []audit.Event
}

func (a *fakeAudit) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
