package events

import (
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barberflow-web/internal/sanitize"
)

// Ações do funil de onboarding.
const (
	ActionUserCreated       = "user_created"
	ActionEmailVerified     = "email_verified"
	ActionCodeResent        = "code_resent"
	ActionBarbershopCreated = "barbershop_created"
)

type Event struct {
	Session  string
	Action   string
	Metadata map[string]any
}

// Dispatcher registra eventos do funil de forma assíncrona. A fila tem
// tamanho fixo e nunca bloqueia o request: evento em fila cheia é
// descartado.
type Dispatcher struct {
	logger *slog.Logger
	queue  chan Event
	done   chan struct{}
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		// Metadados passam pela mesma redação do interceptor do
		// gateway: nenhum caminho de log vaza campo sensível.
		d.logger.Info("onboarding event",
			slog.String("session", ev.Session),
			slog.String("action", ev.Action),
			slog.Any("metadata", sanitize.Data(ev.Metadata)),
			slog.Time("at", time.Now()),
		)
	}
	close(d.done)
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("event queue full, dropping",
			slog.String("action", ev.Action))
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
