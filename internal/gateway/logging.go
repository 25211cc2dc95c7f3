package gateway

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/BruksfildServices01/barberflow-web/internal/sanitize"
)

// loggingTransport loga toda request/response do gateway com os campos
// sensíveis redigidos. Só entra no client em build de desenvolvimento.
type loggingTransport struct {
	base http.RoundTripper
	log  *slog.Logger
}

func newLoggingTransport(base http.RoundTripper) *loggingTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &loggingTransport{
		base: base,
		log:  slog.Default(),
	}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.log.Debug("gateway request",
		"method", req.Method,
		"url", req.URL.String(),
		"body", sanitize.JSON(snoopRequestBody(req)),
	)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		t.log.Error("gateway error",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err.Error(),
		)
		return nil, err
	}

	t.log.Debug("gateway response",
		"status", resp.StatusCode,
		"body", sanitize.JSON(snoopResponseBody(resp)),
	)
	return resp, nil
}

// snoopRequestBody lê o body e repõe um reader novo na request.
func snoopRequestBody(req *http.Request) []byte {
	if req.Body == nil {
		return nil
	}
	data, err := io.ReadAll(req.Body)
	req.Body.Close()
	if err != nil {
		return nil
	}
	req.Body = io.NopCloser(bytes.NewReader(data))
	return data
}

func snoopResponseBody(resp *http.Response) []byte {
	if resp.Body == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return data
}
