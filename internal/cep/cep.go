package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BruksfildServices01/barberflow-web/internal/masks"
)

// Categorias de falha da busca de CEP. Cada uma vira uma notificação
// diferente para o usuário.
var (
	ErrInvalid     = errors.New("cep inválido")
	ErrNotFound    = errors.New("cep não encontrado")
	ErrUnavailable = errors.New("serviço de cep indisponível")
	ErrUnexpected  = errors.New("resposta inesperada do serviço de cep")
)

// Address é o endereço resolvido pelo ViaCEP.
type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// viaCEP devolve 200 com {"erro": true} para CEP bem formado porém
// inexistente.
type viaCEPResponse struct {
	Address
	Erro bool `json:"erro"`
}

// Lookup busca o endereço de um CEP (8 dígitos, com ou sem máscara).
func (c *Client) Lookup(ctx context.Context, value string) (*Address, error) {
	digits := masks.Digits(value)
	if len(digits) != 8 {
		return nil, ErrInvalid
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ErrUnexpected
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, ErrInvalid
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrUnexpected, resp.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	if body.Erro {
		return nil, ErrNotFound
	}

	return &body.Address, nil
}
