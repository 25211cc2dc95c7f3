package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow-web/internal/masks"
	"github.com/BruksfildServices01/barberflow-web/internal/plans"
	"github.com/BruksfildServices01/barberflow-web/internal/validation"
)

type PaymentHandler struct {
	stores StoreFactory
}

func NewPaymentHandler(stores StoreFactory) *PaymentHandler {
	return &PaymentHandler{stores: stores}
}

func (h *PaymentHandler) page(c *gin.Context, status int, form validation.PaymentForm, planID string, errs map[string]string) {
	c.HTML(status, "payment", gin.H{
		"Title":    "Escolha seu plano",
		"Plans":    plans.All,
		"Selected": plans.ByID(planID),
		"Form":     form,
		"Errors":   errs,
	})
}

func (h *PaymentHandler) PaymentPage(c *gin.Context) {
	if _, ok := requireUserEmail(c, h.stores(c)); !ok {
		return
	}
	h.page(c, http.StatusOK, validation.PaymentForm{}, c.Query("plano"), nil)
}

// Subscribe valida os dados do cartão e avança para a configuração da
// barbearia. A cobrança em si acontece fora daqui.
func (h *PaymentHandler) Subscribe(c *gin.Context) {
	if _, ok := requireUserEmail(c, h.stores(c)); !ok {
		return
	}

	var form validation.PaymentForm
	_ = c.ShouldBind(&form)

	form.CardNumber = masks.CardNumber(form.CardNumber)
	form.CardExpiry = masks.ExpiryDate(form.CardExpiry)

	if errs := validation.Struct(form); len(errs) > 0 {
		h.page(c, http.StatusUnprocessableEntity, form, c.PostForm("plano"), errs)
		return
	}

	c.Redirect(http.StatusSeeOther, "/onboarding/barbershop-setup")
}
