package validation

// Forms espelham os formulários das páginas; os valores chegam já
// mascarados (telefone, cartão, CEP) e as regras validam o formato
// final exibido.

type SignupForm struct {
	FullName string `form:"fullName" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
	Phone    string `form:"phone" validate:"required,min=14,br_phone"`
	Password string `form:"password" validate:"required,min=8"`
}

type VerificationForm struct {
	Email string `form:"email" validate:"required,email"`
	Code  string `form:"code" validate:"required,len=6"`
}

type PaymentForm struct {
	CardNumber string `form:"cardNumber" validate:"required,card_number"`
	CardExpiry string `form:"cardExpiry" validate:"required,card_expiry,expiry_future"`
	CardCVC    string `form:"cardCvc" validate:"required,min=3,max=4,numeric"`
	CardHolder string `form:"cardHolder" validate:"required,min=3"`
}

type BarbershopForm struct {
	Name  string `form:"name" validate:"required,min=3"`
	Owner string `form:"owner" validate:"required,min=3"`
	Phone string `form:"phone" validate:"required,min=14,br_phone"`
	Email string `form:"email" validate:"required,email"`

	Month string `form:"month" validate:"required"`
	Year  string `form:"year" validate:"required,founding_year"`

	ZipCode      string `form:"zipCode" validate:"required,cep"`
	Street       string `form:"street" validate:"required,min=5"`
	Number       string `form:"number" validate:"required"`
	Complement   string `form:"complement" validate:"omitempty"`
	Neighborhood string `form:"neighborhood" validate:"required,min=3"`
	State        string `form:"state" validate:"required,len=2"`

	Opening string `form:"opening" validate:"required"`
	Closing string `form:"closing" validate:"required"`

	HowFound     string `form:"howFound" validate:"omitempty"`
	Expectations string `form:"expectations" validate:"omitempty"`
}

type SaleForm struct {
	Client  string `form:"cliente" validate:"required"`
	Service string `form:"servico" validate:"required"`
	Value   string `form:"valor" validate:"required"`
	Payment string `form:"pagamento" validate:"required,oneof=dinheiro debito credito pix"`
}
