package events

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d := NewDispatcher(logger)
	d.Dispatch(Event{
		Session:  "abc",
		Action:   ActionUserCreated,
		Metadata: map[string]any{"email": "a@b.com"},
	})
	d.Close()

	out := buf.String()
	assert.Contains(t, out, "user_created")
	assert.Contains(t, out, "abc")
}

func TestDispatcherRedactsSensitiveMetadata(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d := NewDispatcher(logger)
	d.Dispatch(Event{
		Session: "abc",
		Action:  ActionUserCreated,
		Metadata: map[string]any{
			"email": "a@b.com",
			"plan":  "pro",
		},
	})
	d.Close()

	out := buf.String()
	assert.NotContains(t, out, "a@b.com")
	assert.Contains(t, out, "***REMOVED***")
	assert.Contains(t, out, "pro", "campo não sensível permanece")
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 1),
		done:   make(chan struct{}),
	}
	// Sem worker: a segunda entrada não cabe e é descartada.
	d.Dispatch(Event{Action: ActionCodeResent})
	d.Dispatch(Event{Action: ActionCodeResent})

	assert.Contains(t, buf.String(), "event queue full")
}
