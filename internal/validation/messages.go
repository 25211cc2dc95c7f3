package validation

import "github.com/go-playground/validator/v10"

const genericMessage = "Campo inválido"

// Mensagens por campo+regra, chave StructNamespace:tag.
var messages = map[string]string{
	"SignupForm.FullName:required": "Nome completo deve ter pelo menos 3 caracteres.",
	"SignupForm.FullName:min":      "Nome completo deve ter pelo menos 3 caracteres.",
	"SignupForm.Email:required":    "Por favor, insira um email válido.",
	"SignupForm.Email:email":       "Por favor, insira um email válido.",
	"SignupForm.Phone:required":    "Telefone é obrigatório",
	"SignupForm.Phone:min":         "Telefone é obrigatório",
	"SignupForm.Phone:br_phone":    "Telefone inválido",
	"SignupForm.Password:required": "Senha deve ter pelo menos 8 caracteres.",
	"SignupForm.Password:min":      "Senha deve ter pelo menos 8 caracteres.",

	"VerificationForm.Email:required": "Email inválido",
	"VerificationForm.Email:email":    "Email inválido",
	"VerificationForm.Code:required":  "Código deve ter 6 dígitos",
	"VerificationForm.Code:len":       "Código deve ter 6 dígitos",

	"PaymentForm.CardNumber:required":      "Número do cartão é obrigatório",
	"PaymentForm.CardNumber:card_number":   "Formato inválido",
	"PaymentForm.CardExpiry:required":      "Data de validade é obrigatória",
	"PaymentForm.CardExpiry:card_expiry":   "Data de validade inválida",
	"PaymentForm.CardExpiry:expiry_future": "Cartão expirado",
	"PaymentForm.CardCVC:required":         "CVC inválido",
	"PaymentForm.CardCVC:min":              "CVC inválido",
	"PaymentForm.CardCVC:max":              "CVC inválido",
	"PaymentForm.CardCVC:numeric":          "CVC inválido",
	"PaymentForm.CardHolder:required":      "Nome impresso no cartão é obrigatório",
	"PaymentForm.CardHolder:min":           "Nome impresso no cartão é obrigatório",

	"BarbershopForm.Name:required":          "Nome da barbearia deve ter pelo menos 3 caracteres.",
	"BarbershopForm.Name:min":               "Nome da barbearia deve ter pelo menos 3 caracteres.",
	"BarbershopForm.Owner:required":         "Nome do responsável deve ter pelo menos 3 caracteres.",
	"BarbershopForm.Owner:min":              "Nome do responsável deve ter pelo menos 3 caracteres.",
	"BarbershopForm.Phone:required":         "Telefone é obrigatório",
	"BarbershopForm.Phone:min":              "Telefone é obrigatório",
	"BarbershopForm.Phone:br_phone":         "Telefone inválido",
	"BarbershopForm.Email:required":         "Email inválido",
	"BarbershopForm.Email:email":            "Email inválido",
	"BarbershopForm.Month:required":         "Mês de fundação é obrigatório",
	"BarbershopForm.Year:required":          "Ano de fundação inválido",
	"BarbershopForm.Year:founding_year":     "Ano de fundação inválido",
	"BarbershopForm.ZipCode:required":       "CEP inválido",
	"BarbershopForm.ZipCode:cep":            "CEP inválido",
	"BarbershopForm.Street:required":        "Logradouro é obrigatório",
	"BarbershopForm.Street:min":             "Logradouro é obrigatório",
	"BarbershopForm.Number:required":        "Número é obrigatório",
	"BarbershopForm.Neighborhood:required":  "Bairro é obrigatório",
	"BarbershopForm.Neighborhood:min":       "Bairro é obrigatório",
	"BarbershopForm.State:required":         "Estado inválido",
	"BarbershopForm.State:len":              "Estado inválido",
	"BarbershopForm.Opening:required":       "Horário de abertura é obrigatório",
	"BarbershopForm.Closing:required":       "Horário de fechamento é obrigatório",

	"SaleForm.Client:required":  "Por favor selecione o cliente",
	"SaleForm.Service:required": "Por favor selecione o serviço",
	"SaleForm.Value:required":   "Por favor digite o valor",
	"SaleForm.Payment:required": "Por favor selecione o método de pagamento",
	"SaleForm.Payment:oneof":    "Por favor selecione o método de pagamento",
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := messages[fe.StructNamespace()+":"+fe.Tag()]; ok {
		return msg
	}
	return genericMessage
}
