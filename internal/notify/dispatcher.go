package notify

import (
	"fmt"

	"github.com/rs/zerolog"
)

type Dispatcher struct {
	mailer Mailer
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(mailer Mailer, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		log:    log.With().Str("component", "notify").Logger(),
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.send(ev); err != nil {
			d.log.Error().
				Err(err).
				Str("kind", string(ev.Kind)).
				Str("cita_id", ev.Appointment.ID).
				Msg("error al enviar el correo")
		}
	}
}

func (d *Dispatcher) send(ev Event) error {
	switch ev.Kind {
	case KindBooked:
		return d.mailer.SendBooked(&ev.Appointment)
	case KindCancelled:
		return d.mailer.SendCancelled(&ev.Appointment, ev.DeletedAt)
	case KindRescheduled:
		return d.mailer.SendRescheduled(ev.Previous, &ev.Appointment)
	case KindAttended:
		return d.mailer.SendAttended(ev.Appointment.ContactEmail, ev.Appointment.ClientName)
	}
	return fmt.Errorf("notify: kind desconocido %q", ev.Kind)
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila llena: se descarta la notificación, nunca se bloquea la API
		d.log.Warn().
			Str("kind", string(ev.Kind)).
			Msg("cola de notificaciones llena, evento descartado")
	}
}

var _ Notifier = (*Dispatcher)(nil)
