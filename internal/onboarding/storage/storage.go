package storage

import (
	"context"
	"time"
)

// Storage é o suporte durável do rascunho de onboarding: um único
// registro JSON por visitante.
type Storage interface {
	// Load devolve (nil, nil) quando não há registro.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte, ttl time.Duration) error
	Delete(ctx context.Context) error
}
