package notify

import (
	"time"

	"github.com/luxepet-health/clinic-api/internal/models"
)

// ===============================
// Outbound notifications
// ===============================

// Los correos se disparan después de confirmar la escritura primaria y
// son al-menos-intentados-una-vez: si fallan se registra el error y la
// operación que los originó no se entera.

type Kind string

const (
	KindBooked      Kind = "cita_agendada"
	KindCancelled   Kind = "cita_eliminada"
	KindRescheduled Kind = "cita_reagendada"
	KindAttended    Kind = "mascota_atendida"
)

type Event struct {
	Kind Kind

	// Copia de la cita al momento del evento, nunca un puntero al
	// registro vivo.
	Appointment models.Appointment

	// Solo para KindRescheduled: la cita antes de la edición.
	Previous *models.Appointment

	// Solo para KindCancelled.
	DeletedAt time.Time
}

// Notifier es lo único que ven los casos de uso.
type Notifier interface {
	Dispatch(ev Event)
}

// Mailer construye y envía el correo de cada evento.
type Mailer interface {
	SendBooked(cita *models.Appointment) error
	SendCancelled(cita *models.Appointment, deletedAt time.Time) error
	SendRescheduled(prev, next *models.Appointment) error
	SendAttended(to, cliente string) error
}
