package verification

import (
	"fmt"
	"sync"
	"time"
)

// Countdown emite um tick por segundo com os segundos restantes até
// zero. Stop precisa ser chamado quando a tela sai de cena, senão o
// ticker vaza.
type Countdown struct {
	interval time.Duration

	mu      sync.Mutex
	stop    chan struct{}
	stopped bool
}

type CountdownOption func(*Countdown)

// WithInterval encurta o tick (testes).
func WithInterval(d time.Duration) CountdownOption {
	return func(c *Countdown) { c.interval = d }
}

func NewCountdown(seconds int, tick func(remaining int), opts ...CountdownOption) *Countdown {
	c := &Countdown{
		interval: time.Second,
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	go c.run(seconds, tick)
	return c
}

func (c *Countdown) run(seconds int, tick func(remaining int)) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	remaining := seconds
	for remaining > 0 {
		select {
		case <-ticker.C:
			remaining--
			tick(remaining)
		case <-c.stop:
			return
		}
	}
}

func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.stopped {
		c.stopped = true
		close(c.stop)
	}
}

// FormatSeconds apresenta o tempo restante como a tela mostra.
func FormatSeconds(seconds int) string {
	return fmt.Sprintf("%d segundos", seconds)
}
