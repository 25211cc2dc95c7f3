package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName       = "bf_session"
	ContextSessionID = "sessionID"
)

// Manager identifica o visitante com um ID de sessão (UUID) assinado
// num cookie JWT HS256. A sessão só serve para achar o rascunho de
// onboarding dele — não carrega identidade autenticada.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    24 * time.Hour,
	}
}

func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ""

		if token, err := c.Cookie(CookieName); err == nil {
			id, _ = m.parse(token)
		}

		if id == "" {
			id = uuid.NewString()
			if token, err := m.sign(id); err == nil {
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
			}
		}

		c.Set(ContextSessionID, id)
		c.Next()
	}
}

func (m *Manager) sign(id string) (string, error) {
	claims := jwt.MapClaims{
		"sub": id,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return sub, nil
}
