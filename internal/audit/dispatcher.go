package audit

import "go.uber.org/zap"

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	zap    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, zapLogger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		zap:    zapLogger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.zap.Warn("audit error", zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia → descartamos o evento; auditoria nunca derruba a API
		d.zap.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
