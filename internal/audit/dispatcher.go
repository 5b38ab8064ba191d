package audit

import "log/slog"

type Event struct {
	AgentID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	slog   *slog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, sl *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		slog:   sl,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

// Nop returns a dispatcher that discards every event. Used in tests and
// anywhere a database-backed trail is not wired.
func Nop() *Dispatcher {
	d := &Dispatcher{
		slog:  slog.Default(),
		queue: make(chan Event, 1),
	}
	go func() {
		for range d.queue {
		}
	}()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.AgentID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.slog.Warn("audit write failed", "action", ev.Action, "err", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event, never block a request on audit
		d.slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
