// Package services implements the rescheduling engine: the four
// scheduling operations, the read accessors, and the pure date-remapping
// algorithm they share. Every operation resolves its remote-session
// handle through a session resolver, performs its remote updates
// strictly one record at a time, and aggregates per-record outcomes
// instead of failing the batch.
package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"warlon-catering-service/internal/ports"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// SessionResolver hands out the one remote-session handle owned by a
// session key. Implemented by session.Store.
type SessionResolver interface {
	Resolve(ctx context.Context, key string) ports.CateringClient
}

type Service struct {
	sessions SessionResolver
	log      *zap.Logger
}

func New(sessions SessionResolver, log *zap.Logger) *Service {
	return &Service{sessions: sessions, log: log}
}

// Login authenticates the session's handle explicitly. It works even
// when an earlier auto-login attempt on the same handle failed.
func (s *Service) Login(ctx context.Context, sessionKey, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	return s.sessions.Resolve(ctx, sessionKey).Login(ctx, username, password)
}

// authedClient resolves the session's handle and rejects data operations
// on sessions with no successful login, before any remote call is made.
func (s *Service) authedClient(ctx context.Context, sessionKey string) (ports.CateringClient, error) {
	client := s.sessions.Resolve(ctx, sessionKey)
	if !client.Authenticated() {
		return nil, ports.ErrNotAuthenticated
	}
	return client, nil
}
