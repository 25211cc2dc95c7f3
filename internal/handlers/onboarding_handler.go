package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow-web/internal/events"
	"github.com/BruksfildServices01/barberflow-web/internal/gateway"
	"github.com/BruksfildServices01/barberflow-web/internal/masks"
	"github.com/BruksfildServices01/barberflow-web/internal/onboarding"
	"github.com/BruksfildServices01/barberflow-web/internal/password"
	"github.com/BruksfildServices01/barberflow-web/internal/validation"
)

type OnboardingHandler struct {
	gw     *gateway.Client
	stores StoreFactory
	events *events.Dispatcher
}

func NewOnboardingHandler(gw *gateway.Client, stores StoreFactory, ev *events.Dispatcher) *OnboardingHandler {
	return &OnboardingHandler{gw: gw, stores: stores, events: ev}
}

func (h *OnboardingHandler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup", gin.H{
		"Title":  "Crie sua conta no BarberFlow",
		"Form":   validation.SignupForm{},
		"Errors": map[string]string{},
	})
}

// Signup cria a conta no backend e guarda a identidade no rascunho. A
// senha não entra no rascunho — segue direto na chamada.
func (h *OnboardingHandler) Signup(c *gin.Context) {
	var form validation.SignupForm
	_ = c.ShouldBind(&form)

	// Sem o trim, um nome só de espaços passaria no min=3 e deixaria
	// o split de primeiro/último nome sem partes.
	form.FullName = strings.TrimSpace(form.FullName)
	form.Phone = masks.PhoneNumber(form.Phone)

	if errs := validation.Struct(form); len(errs) > 0 {
		c.HTML(http.StatusUnprocessableEntity, "signup", gin.H{
			"Title":    "Crie sua conta no BarberFlow",
			"Form":     form,
			"Errors":   errs,
			"Strength": password.Strength(form.Password),
		})
		return
	}

	parts := strings.Fields(form.FullName)
	firstName := parts[0]
	lastName := strings.Join(parts[1:], " ")

	_, err := h.gw.CreateUser(c.Request.Context(), gateway.CreateUserInput{
		Email:     form.Email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  form.Password,
		Cellphone: masks.Digits(form.Phone),
	})
	if err != nil {
		c.HTML(http.StatusBadGateway, "signup", gin.H{
			"Title":   "Crie sua conta no BarberFlow",
			"Form":    form,
			"Errors":  map[string]string{},
			"Flashes": []Flash{{Kind: "error", Message: err.Error()}},
		})
		return
	}

	store := h.stores(c)
	store.SetUserData(c.Request.Context(), onboarding.UserPatch{
		FirstName: onboarding.String(firstName),
		LastName:  onboarding.String(lastName),
		Email:     onboarding.String(form.Email),
		Cellphone: onboarding.String(masks.Digits(form.Phone)),
	})

	h.events.Dispatch(events.Event{
		Session:  sessionID(c),
		Action:   events.ActionUserCreated,
		Metadata: map[string]any{"email": form.Email},
	})

	c.Redirect(http.StatusSeeOther, "/onboarding/verificar-codigo")
}
