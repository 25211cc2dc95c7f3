package onboarding

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/BruksfildServices01/barberflow-web/internal/onboarding/storage"
)

// MaxAge é a janela de validade do rascunho. Depois disso o snapshot
// persistido não é mais confiável e a store volta aos defaults.
const MaxAge = 24 * time.Hour

type snapshot struct {
	UserData       UserDraft       `json:"userData"`
	BarbershopData BarbershopDraft `json:"barbershopData"`
	SavedAt        time.Time       `json:"savedAt"`
}

// Store guarda os dois rascunhos do onboarding. Cada mutação faz merge
// raso, persiste o snapshot inteiro com timestamp de escrita e avisa os
// inscritos.
type Store struct {
	mu      sync.Mutex
	storage storage.Storage
	now     func() time.Time

	user UserDraft
	shop BarbershopDraft
	subs []func()
}

type Option func(*Store)

// WithClock troca o relógio da store (testes de expiração).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(ctx context.Context, st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage: st,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.storage.Load(ctx)
	if err != nil {
		log.Printf("onboarding store: load failed, starting empty: %v", err)
		return
	}
	if data == nil {
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("onboarding store: corrupt snapshot, starting empty: %v", err)
		return
	}

	// Snapshot velho demais não é confiável.
	if s.now().Sub(snap.SavedAt) > MaxAge {
		return
	}

	s.user = snap.UserData
	s.shop = snap.BarbershopData
}

func (s *Store) UserData() UserDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) BarbershopData() BarbershopDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shop
}

func (s *Store) SetUserData(ctx context.Context, p UserPatch) {
	s.mu.Lock()
	s.user.apply(p)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()
}

func (s *Store) SetBarbershopData(ctx context.Context, p BarbershopPatch) {
	s.mu.Lock()
	s.shop.apply(p)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify()
}

// Clear zera os rascunhos e apaga o registro durável. Usado quando a
// submissão final da barbearia é aceita pelo backend.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.user = UserDraft{}
	s.shop = BarbershopDraft{}
	if err := s.storage.Delete(ctx); err != nil {
		log.Printf("onboarding store: delete failed: %v", err)
	}
	s.mu.Unlock()

	s.notify()
}

// Subscribe registra um callback chamado após cada mutação.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) persist(ctx context.Context) {
	snap := snapshot{
		UserData:       s.user,
		BarbershopData: s.shop,
		SavedAt:        s.now(),
	}

	data, err := json.Marshal(snap)
	if err != nil {
		log.Printf("onboarding store: marshal failed: %v", err)
		return
	}

	if err := s.storage.Save(ctx, data, MaxAge); err != nil {
		log.Printf("onboarding store: save failed: %v", err)
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}
