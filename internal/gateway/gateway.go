package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fala com a API de tenants do backend. Cada método devolve o
// payload de sucesso ou um erro construído — nunca deixa pânico ou
// resposta crua vazar para quem chama.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithLogging liga o interceptor de request/response (builds de
// desenvolvimento). Campos sensíveis saem redigidos no log.
func WithLogging() Option {
	return func(c *Client) {
		c.http.Transport = newLoggingTransport(c.http.Transport)
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: http.DefaultTransport,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError é o payload estruturado de falha do backend.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Success bool   `json:"success"`
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorWithCode devolve a mensagem com o código anexado, quando há.
func (e *APIError) ErrorWithCode() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
}

// post envia o body JSON e decodifica a resposta de sucesso em out
// (quando out != nil). Falha com payload estruturado vira *APIError;
// qualquer outra falha vira o fallback da operação.
func (c *Client) post(ctx context.Context, path string, body any, out any, fallback string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s", fallback)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s", fallback)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s", fallback)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s", fallback)
	}

	if resp.StatusCode >= 400 {
		var apiErr APIError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return &apiErr
		}
		return fmt.Errorf("%s", fallback)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s", fallback)
		}
	}
	return nil
}
