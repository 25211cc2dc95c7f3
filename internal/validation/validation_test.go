package validation

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	old := Now
	Now = func() time.Time { return at }
	t.Cleanup(func() { Now = old })
}

func validSignup() SignupForm {
	return SignupForm{
		FullName: "Jorge William",
		Email:    "a@b.com",
		Phone:    "(11) 91234-5678",
		Password: "Senha123!",
	}
}

func TestSignupFormValid(t *testing.T) {
	assert.Empty(t, Struct(validSignup()))
}

func TestSignupFormErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupForm)
		field   string
		message string
	}{
		{"short name", func(f *SignupForm) { f.FullName = "Jo" }, "fullName", "Nome completo deve ter pelo menos 3 caracteres."},
		{"bad email", func(f *SignupForm) { f.Email = "not-an-email" }, "email", "Por favor, insira um email válido."},
		{"unmasked phone", func(f *SignupForm) { f.Phone = "(11) 91234-567a" }, "phone", "Telefone inválido"},
		{"missing phone", func(f *SignupForm) { f.Phone = "" }, "phone", "Telefone é obrigatório"},
		{"short password", func(f *SignupForm) { f.Password = "abc123" }, "password", "Senha deve ter pelo menos 8 caracteres."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validSignup()
			tt.mutate(&form)

			errs := Struct(form)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestPhonePattern(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"(11) 91234-5678", true},
		{"(11) 1234-5678", true},
		{"(11) 123-5678", false},
		{"11912345678", false},
		{"(11)91234-5678", false},
	}

	for _, tt := range tests {
		form := validSignup()
		form.Phone = tt.phone
		_, hasErr := Struct(form)["phone"]
		assert.Equal(t, !tt.ok, hasErr, "phone %q", tt.phone)
	}
}

func validPayment() PaymentForm {
	return PaymentForm{
		CardNumber: "4111 1111 1111 1111",
		CardExpiry: "12/99",
		CardCVC:    "123",
		CardHolder: "JORGE W SILVA",
	}
}

func TestPaymentFormValid(t *testing.T) {
	fixedNow(t, time.Date(2026, time.June, 15, 12, 0, 0, 0, time.Local))
	assert.Empty(t, Struct(validPayment()))
}

func TestCardNumberFormat(t *testing.T) {
	fixedNow(t, time.Date(2026, time.June, 15, 12, 0, 0, 0, time.Local))

	form := validPayment()
	form.CardNumber = "4111111111111111"

	assert.Equal(t, "Formato inválido", Struct(form)["cardNumber"])
}

func TestExpiredCard(t *testing.T) {
	fixedNow(t, time.Date(2026, time.June, 15, 12, 0, 0, 0, time.Local))

	form := validPayment()
	form.CardExpiry = "01/20"

	assert.Equal(t, "Cartão expirado", Struct(form)["cardExpiry"])
}

func TestExpiryRelativeToClock(t *testing.T) {
	form := validPayment()
	form.CardExpiry = "12/99"

	fixedNow(t, time.Date(2099, time.November, 30, 23, 59, 0, 0, time.Local))
	assert.Empty(t, Struct(form), "Dec 2099 still ahead of Nov 2099")

	fixedNow(t, time.Date(2099, time.December, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, "Cartão expirado", Struct(form)["cardExpiry"], "strictly-after comparison")
}

func TestExpiryFormat(t *testing.T) {
	fixedNow(t, time.Date(2026, time.June, 15, 12, 0, 0, 0, time.Local))

	for _, bad := range []string{"13/25", "00/25", "1225", "12-25"} {
		form := validPayment()
		form.CardExpiry = bad
		assert.Equal(t, "Data de validade inválida", Struct(form)["cardExpiry"], "expiry %q", bad)
	}
}

func validBarbershop() BarbershopForm {
	return BarbershopForm{
		Name:         "Barbearia do Jorge",
		Owner:        "Jorge William",
		Phone:        "(11) 91234-5678",
		Email:        "contato@barbearia.com",
		Month:        "3",
		Year:         "2015",
		ZipCode:      "01310-100",
		Street:       "Avenida Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		State:        "SP",
		Opening:      "09:00",
		Closing:      "19:00",
	}
}

func TestBarbershopFormValid(t *testing.T) {
	fixedNow(t, time.Date(2026, time.June, 15, 12, 0, 0, 0, time.Local))
	assert.Empty(t, Struct(validBarbershop()))
}

func TestBarbershopFormErrors(t *testing.T) {
	fixedNow(t, time.Date(2026, time.June, 15, 12, 0, 0, 0, time.Local))

	tests := []struct {
		name    string
		mutate  func(*BarbershopForm)
		field   string
		message string
	}{
		{"single char state", func(f *BarbershopForm) { f.State = "S" }, "state", "Estado inválido"},
		{"cep without hyphen", func(f *BarbershopForm) { f.ZipCode = "01310100" }, "zipCode", "CEP inválido"},
		{"year before 1900", func(f *BarbershopForm) { f.Year = "1899" }, "year", "Ano de fundação inválido"},
		{"year in the future", func(f *BarbershopForm) { f.Year = "2027" }, "year", "Ano de fundação inválido"},
		{"short street", func(f *BarbershopForm) { f.Street = "Rua" }, "street", "Logradouro é obrigatório"},
		{"missing number", func(f *BarbershopForm) { f.Number = "" }, "number", "Número é obrigatório"},
		{"missing opening", func(f *BarbershopForm) { f.Opening = "" }, "opening", "Horário de abertura é obrigatório"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBarbershop()
			tt.mutate(&form)

			errs := Struct(form)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

func TestVerificationForm(t *testing.T) {
	assert.Empty(t, Struct(VerificationForm{Email: "a@b.com", Code: "123456"}))

	errs := Struct(VerificationForm{Email: "a@b.com", Code: "123"})
	assert.Equal(t, "Código deve ter 6 dígitos", errs["code"])
}

func TestSaleForm(t *testing.T) {
	valid := SaleForm{Client: "1", Service: "corte", Value: "45,00", Payment: "pix"}
	assert.Empty(t, Struct(valid))

	for _, method := range []string{"dinheiro", "debito", "credito", "pix"} {
		form := valid
		form.Payment = method
		assert.Empty(t, Struct(form), fmt.Sprintf("method %s", method))
	}

	form := valid
	form.Payment = "cheque"
	assert.Equal(t, "Por favor selecione o método de pagamento", Struct(form)["pagamento"])
}
