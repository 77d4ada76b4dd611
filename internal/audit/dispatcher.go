package audit

import "github.com/rs/zerolog"

type Event struct {
	ActorEmail string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Recorder es lo que consumen los casos de uso; Dispatcher lo implementa
// con una cola en memoria para no sumar latencia a las peticiones.
type Recorder interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log.With().Str("component", "audit").Logger(),
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorEmail,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila llena: se descarta el registro, nunca se rompe la API
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

var _ Recorder = (*Dispatcher)(nil)
