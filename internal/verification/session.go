package verification

import (
	"sync"
	"time"
)

// DefaultWindow é o cooldown padrão entre reenvios de código.
const DefaultWindow = 30 * time.Second

// Session controla o cooldown de reenvio de código para um email. É
// reconstruída a cada montagem da tela de verificação; o backend é quem
// manda na validade real do código — aqui só se trava o botão.
type Session struct {
	mu     sync.Mutex
	email  string
	window time.Duration
	now    func() time.Time

	nextResend time.Time
}

type Option func(*Session)

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func NewSession(email string, window time.Duration, opts ...Option) *Session {
	if window <= 0 {
		window = DefaultWindow
	}
	s := &Session{
		email:  email,
		window: window,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	// O primeiro envio acabou de acontecer; o cooldown começa cheio.
	s.nextResend = s.now().Add(window)
	return s
}

func (s *Session) Email() string {
	return s.email
}

// Remaining devolve os segundos até o reenvio liberar (0 quando já
// liberou).
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	left := s.nextResend.Sub(s.now())
	if left <= 0 {
		return 0
	}
	return int(left.Round(time.Second) / time.Second)
}

func (s *Session) CanResend() bool {
	return s.Remaining() == 0
}

// MarkResent reinicia o cooldown após um reenvio aceito.
func (s *Session) MarkResent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextResend = s.now().Add(s.window)
}
