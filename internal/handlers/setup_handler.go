package handlers

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow-web/internal/cep"
	"github.com/BruksfildServices01/barberflow-web/internal/events"
	"github.com/BruksfildServices01/barberflow-web/internal/httperr"
	"github.com/BruksfildServices01/barberflow-web/internal/onboarding"
	"github.com/BruksfildServices01/barberflow-web/internal/validation"
	"github.com/BruksfildServices01/barberflow-web/internal/wizard"
)

type SetupHandler struct {
	stores    StoreFactory
	lookup    wizard.AddressLookup
	registrar wizard.Registrar
	events    *events.Dispatcher
	now       func() time.Time

	mu       sync.Mutex
	machines map[string]*setupSession
}

// setupSession amarra a máquina do assistente ao buffer de toasts do
// visitante.
type setupSession struct {
	machine  *wizard.Machine
	flashes  *flashBuffer
	lastSeen time.Time
}

func NewSetupHandler(stores StoreFactory, lookup wizard.AddressLookup, registrar wizard.Registrar, ev *events.Dispatcher) *SetupHandler {
	return &SetupHandler{
		stores:    stores,
		lookup:    lookup,
		registrar: registrar,
		events:    ev,
		now:       time.Now,
		machines:  make(map[string]*setupSession),
	}
}

func (h *SetupHandler) sessionFor(c *gin.Context) *setupSession {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Sessões abandonadas seguem a mesma janela do rascunho: depois
	// dela o visitante recomeça de um rascunho expirado de todo jeito.
	now := h.now()
	for id, s := range h.machines {
		if now.Sub(s.lastSeen) > onboarding.MaxAge {
			delete(h.machines, id)
		}
	}

	id := sessionID(c)
	if s, ok := h.machines[id]; ok {
		s.lastSeen = now
		return s
	}

	flashes := &flashBuffer{}
	s := &setupSession{
		machine:  wizard.New(h.stores(c), h.lookup, h.registrar, flashes),
		flashes:  flashes,
		lastSeen: now,
	}
	h.machines[id] = s
	return s
}

func (h *SetupHandler) forget(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.machines, sessionID(c))
}

func (h *SetupHandler) page(c *gin.Context, status int, s *setupSession, errs map[string]string) {
	step := s.machine.Step()
	c.HTML(status, "setup", gin.H{
		"Title":          "Configure sua barbearia",
		"Step":           step,
		"StepNumber":     int(step) + 1,
		"StepCount":      wizard.StepCount,
		"StepTitle":      step.Title(),
		"StepDesc":       step.Description(),
		"Form":           s.machine.Form(),
		"AddressVisible": s.machine.AddressVisible(),
		"Loading":        s.machine.Loading(),
		"Errors":         errs,
		"Flashes":        s.flashes.Drain(),
	})
}

func (h *SetupHandler) SetupPage(c *gin.Context) {
	if _, ok := requireUserEmail(c, h.stores(c)); !ok {
		return
	}
	h.page(c, http.StatusOK, h.sessionFor(c), nil)
}

// Setup processa o formulário da etapa corrente. O campo action decide
// o movimento: next, back, lookup-cep ou submit.
func (h *SetupHandler) Setup(c *gin.Context) {
	if _, ok := requireUserEmail(c, h.stores(c)); !ok {
		return
	}
	s := h.sessionFor(c)
	ctx := c.Request.Context()

	var form validation.BarbershopForm
	_ = c.ShouldBind(&form)
	s.machine.UpdateForm(ctx, form)

	switch c.PostForm("action") {
	case "back":
		if err := s.machine.Back(); err != nil && !errors.Is(err, wizard.ErrAtFirstStep) {
			s.flashes.Error(err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/onboarding/barbershop-setup")

	case "lookup-cep":
		// Falhas já viram toast dentro da máquina.
		_ = s.machine.LookupCEP(ctx, form.ZipCode)
		c.Redirect(http.StatusSeeOther, "/onboarding/barbershop-setup")

	case "submit":
		err := s.machine.Submit(ctx)
		if err == nil {
			h.events.Dispatch(events.Event{
				Session: sessionID(c),
				Action:  events.ActionBarbershopCreated,
			})
			h.forget(c)
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		if errors.Is(err, wizard.ErrSessionInvalid) {
			h.forget(c)
			c.Redirect(http.StatusSeeOther, "/onboarding/novo-usuario")
			return
		}
		if errors.Is(err, wizard.ErrBusy) || errors.Is(err, wizard.ErrNotFinalStep) {
			s.flashes.Error(err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/onboarding/barbershop-setup")

	default: // next
		if err := s.machine.Next(); err != nil {
			if errors.Is(err, wizard.ErrStepInvalid) {
				h.page(c, http.StatusUnprocessableEntity, s, validation.Struct(s.machine.Form()))
				return
			}
			s.flashes.Error(err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/onboarding/barbershop-setup")
	}
}

// LookupCEP é o endpoint JSON usado pelo campo de CEP da tela.
func (h *SetupHandler) LookupCEP(c *gin.Context) {
	addr, err := h.lookup.Lookup(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case errors.Is(err, cep.ErrInvalid):
			httperr.BadRequest(c, "invalid_cep", "CEP deve conter 8 dígitos")
		case errors.Is(err, cep.ErrNotFound):
			httperr.NotFound(c, "cep_not_found", "CEP não encontrado")
		case errors.Is(err, cep.ErrUnavailable):
			httperr.Unavailable(c, "cep_unavailable", "Serviço de CEP indisponível")
		default:
			httperr.Internal(c, "cep_lookup_failed", "Erro ao buscar CEP")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"street":       addr.Street,
		"neighborhood": addr.Neighborhood,
		"state":        addr.State,
	})
}
