package gateway

import "context"

// Fallbacks localizados para falhas sem payload estruturado.
const (
	fallbackCreateUser       = "Erro ao criar usuário."
	fallbackVerifyEmail      = "Erro ao verificar email."
	fallbackResendCode       = "Erro ao reenviar código."
	fallbackCreateBarbershop = "Erro ao criar barbearia"
)

type CreateUserInput struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	// Somente dígitos.
	Cellphone string `json:"cellphone"`
}

type User struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Cellphone string `json:"cellphone"`
}

func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	var user User
	if err := c.post(ctx, "/tenants/register", in, &user, fallbackCreateUser); err != nil {
		return nil, err
	}
	return &user, nil
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (c *Client) VerifyEmail(ctx context.Context, email, code string) error {
	return c.post(ctx, "/tenants/verify-email", verifyEmailRequest{Email: email, Code: code}, nil, fallbackVerifyEmail)
}

type resendCodeRequest struct {
	Email string `json:"email"`
}

func (c *Client) ResendCode(ctx context.Context, email string) error {
	return c.post(ctx, "/tenants/resend-code", resendCodeRequest{Email: email}, nil, fallbackResendCode)
}

type FoundationDate struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type BarbershopAddress struct {
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
}

type BarbershopHours struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

type CreateBarbershopInput struct {
	Name           string            `json:"name"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	UserEmail      string            `json:"userEmail"`
	FoundationDate FoundationDate    `json:"foundationDate"`
	Address        BarbershopAddress `json:"address"`
	BusinessHours  BarbershopHours   `json:"businessHours"`
	Expectation    string            `json:"expectation"`
	FoundUsOn      string            `json:"foundUsOn"`
}

// CreateBarbershop registra a barbearia do tenant. Erro estruturado
// volta com o código anexado à mensagem.
func (c *Client) CreateBarbershop(ctx context.Context, in CreateBarbershopInput) (*CreateBarbershopInput, error) {
	var created CreateBarbershopInput
	err := c.post(ctx, "/tenants/barbershops/register", in, &created, fallbackCreateBarbershop)
	if err != nil {
		if apiErr, ok := err.(*APIError); ok {
			return nil, &barbershopError{apiErr}
		}
		return nil, err
	}
	return &created, nil
}

// barbershopError preserva o *APIError para errors.As e formata a
// mensagem com o sufixo (code: ...).
type barbershopError struct {
	api *APIError
}

func (e *barbershopError) Error() string { return e.api.ErrorWithCode() }
func (e *barbershopError) Unwrap() error { return e.api }
