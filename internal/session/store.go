// Package session owns the process-wide cache of remote-session
// handles, one per caller session key.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"warlon-catering-service/internal/ports"
)

// Credentials configured for auto-login, typically from the process
// environment.
type Credentials struct {
	Username string
	Password string
}

// Factory builds a fresh unauthenticated client handle.
type Factory func() ports.CateringClient

// Store maps session keys to client handles. A handle is created on the
// first resolve of its key and lives for the process lifetime; there is
// no eviction. Handles are the only shared mutable state in the service.
type Store struct {
	factory Factory
	creds   Credentials
	log     *zap.Logger

	mu      sync.Mutex
	handles map[string]*entry
}

// entry's once closes the first-resolution race: two goroutines racing
// on a new key get the same entry and exactly one runs create-and-login.
type entry struct {
	once   sync.Once
	client ports.CateringClient
}

func NewStore(factory Factory, creds Credentials, log *zap.Logger) *Store {
	return &Store{
		factory: factory,
		creds:   creds,
		log:     log,
		handles: make(map[string]*entry),
	}
}

// Resolve returns the handle owned by the key, constructing it on first
// use. When credentials are configured, one auto-login is attempted at
// construction; the handle is cached whether or not it succeeds, and a
// failure is never retried here — an explicit Login on the handle is the
// way back in.
func (s *Store) Resolve(ctx context.Context, key string) ports.CateringClient {
	s.mu.Lock()
	e, ok := s.handles[key]
	if !ok {
		e = &entry{}
		s.handles[key] = e
	}
	s.mu.Unlock()

	e.once.Do(func() {
		e.client = s.factory()
		if s.creds.Username == "" || s.creds.Password == "" {
			return
		}
		if err := e.client.Login(ctx, s.creds.Username, s.creds.Password); err != nil {
			s.log.Warn("auto-login failed; session starts unauthenticated",
				zap.String("session", key),
				zap.Error(err),
			)
		}
	})
	return e.client
}
