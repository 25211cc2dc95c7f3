package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberflow-web/internal/onboarding"
	"github.com/BruksfildServices01/barberflow-web/internal/session"
)

// StoreFactory resolve a store de rascunho da sessão corrente.
type StoreFactory func(c *gin.Context) *onboarding.Store

// Flash é uma notificação visível (toast) renderizada no template.
type Flash struct {
	Kind    string // "success" | "error"
	Message string
}

// flashBuffer acumula notificações entre requests (implementa
// wizard.Notifier); o handler drena na próxima renderização.
type flashBuffer struct {
	mu      sync.Mutex
	flashes []Flash
}

func (b *flashBuffer) Success(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flashes = append(b.flashes, Flash{Kind: "success", Message: msg})
}

func (b *flashBuffer) Error(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flashes = append(b.flashes, Flash{Kind: "error", Message: msg})
}

func (b *flashBuffer) Drain() []Flash {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := b.flashes
	b.flashes = nil
	return out
}

func sessionID(c *gin.Context) string {
	return c.GetString(session.ContextSessionID)
}

// requireUserEmail é o guard das etapas pós-cadastro: sem email no
// rascunho a sessão não vale e o fluxo volta para o início.
func requireUserEmail(c *gin.Context, store *onboarding.Store) (string, bool) {
	email := store.UserData().Email
	if email == "" {
		c.Redirect(http.StatusSeeOther, "/onboarding/novo-usuario")
		c.Abort()
		return "", false
	}
	return email, true
}
