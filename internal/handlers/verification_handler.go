package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow-web/internal/events"
	"github.com/BruksfildServices01/barberflow-web/internal/gateway"
	"github.com/BruksfildServices01/barberflow-web/internal/validation"
	"github.com/BruksfildServices01/barberflow-web/internal/verification"
)

type VerificationHandler struct {
	gw     *gateway.Client
	stores StoreFactory
	window time.Duration
	tick   time.Duration
	events *events.Dispatcher

	mu       sync.Mutex
	sessions map[string]*verification.Session
}

func NewVerificationHandler(gw *gateway.Client, stores StoreFactory, window time.Duration, ev *events.Dispatcher) *VerificationHandler {
	return &VerificationHandler{
		gw:       gw,
		stores:   stores,
		window:   window,
		tick:     time.Second,
		events:   ev,
		sessions: make(map[string]*verification.Session),
	}
}

// sessionFor devolve a sessão de verificação do visitante, criando-a no
// primeiro acesso (o cooldown inicial conta a partir do cadastro, que
// acabou de disparar o primeiro código).
func (h *VerificationHandler) sessionFor(id, email string) *verification.Session {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sessions[id]; ok && s.Email() == email {
		return s
	}
	s := verification.NewSession(email, h.window)
	h.sessions[id] = s
	return s
}

func (h *VerificationHandler) page(c *gin.Context, status int, email string, remaining int, flashes []Flash, errs map[string]string) {
	c.HTML(status, "verify", gin.H{
		"Title":     "Verifique seu email",
		"Email":     email,
		"Remaining": remaining,
		"Countdown": verification.FormatSeconds(remaining),
		"CanResend": remaining == 0,
		"Flashes":   flashes,
		"Errors":    errs,
	})
}

func (h *VerificationHandler) VerifyPage(c *gin.Context) {
	email, ok := requireUserEmail(c, h.stores(c))
	if !ok {
		return
	}

	s := h.sessionFor(sessionID(c), email)
	h.page(c, http.StatusOK, email, s.Remaining(), nil, nil)
}

func (h *VerificationHandler) Verify(c *gin.Context) {
	email, ok := requireUserEmail(c, h.stores(c))
	if !ok {
		return
	}
	s := h.sessionFor(sessionID(c), email)

	form := validation.VerificationForm{
		Email: email,
		Code:  c.PostForm("code"),
	}
	if errs := validation.Struct(form); len(errs) > 0 {
		h.page(c, http.StatusUnprocessableEntity, email, s.Remaining(), nil, errs)
		return
	}

	if err := h.gw.VerifyEmail(c.Request.Context(), email, form.Code); err != nil {
		h.page(c, http.StatusBadGateway, email, s.Remaining(),
			[]Flash{{Kind: "error", Message: err.Error()}}, nil)
		return
	}

	h.events.Dispatch(events.Event{
		Session: sessionID(c),
		Action:  events.ActionEmailVerified,
	})

	c.Redirect(http.StatusSeeOther, "/onboarding/assinatura")
}

// CountdownStream transmite, via server-sent events, os segundos até o
// reenvio liberar: um tick por segundo até zero. A desconexão do
// cliente encerra o relógio.
func (h *VerificationHandler) CountdownStream(c *gin.Context) {
	email, ok := requireUserEmail(c, h.stores(c))
	if !ok {
		return
	}
	s := h.sessionFor(sessionID(c), email)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	remaining := s.Remaining()
	c.SSEvent("countdown", verification.FormatSeconds(remaining))
	c.Writer.Flush()
	if remaining == 0 {
		return
	}

	// Buffer para a contagem inteira: nenhum tick é descartado e o
	// zero final sempre chega ao laço de escrita.
	ticks := make(chan int, remaining)
	cd := verification.NewCountdown(remaining, func(left int) {
		select {
		case ticks <- left:
		default:
		}
	}, verification.WithInterval(h.tick))
	defer cd.Stop()

	for {
		select {
		case left := <-ticks:
			c.SSEvent("countdown", verification.FormatSeconds(left))
			c.Writer.Flush()
			if left == 0 {
				return
			}
		case <-c.Request.Context().Done():
			return
		}
	}
}

// Resend reenvia o código de verificação, respeitando o cooldown da
// sessão. O clique antes da hora não chega ao backend.
func (h *VerificationHandler) Resend(c *gin.Context) {
	email, ok := requireUserEmail(c, h.stores(c))
	if !ok {
		return
	}
	s := h.sessionFor(sessionID(c), email)

	if !s.CanResend() {
		h.page(c, http.StatusTooManyRequests, email, s.Remaining(),
			[]Flash{{Kind: "error", Message: "Aguarde para reenviar o código."}}, nil)
		return
	}

	if err := h.gw.ResendCode(c.Request.Context(), email); err != nil {
		h.page(c, http.StatusBadGateway, email, s.Remaining(),
			[]Flash{{Kind: "error", Message: err.Error()}}, nil)
		return
	}

	s.MarkResent()
	h.events.Dispatch(events.Event{
		Session: sessionID(c),
		Action:  events.ActionCodeResent,
	})
	h.page(c, http.StatusOK, email, s.Remaining(),
		[]Flash{{Kind: "success", Message: "Novo código enviado!"}}, nil)
}
