package services

import (
	"context"

	"warlon-catering-service/internal/domain"
	"warlon-catering-service/internal/ports"
)

// Restriction passthroughs. The engine adds nothing beyond the session
// guard; the platform owns all the semantics.

func (s *Service) AvailableRestrictions(ctx context.Context, sessionKey string) ([]domain.Restriction, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return client.AvailableRestrictions(ctx)
}

func (s *Service) UserRestrictions(ctx context.Context, sessionKey string) ([]domain.Restriction, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	return client.UserRestrictions(ctx)
}

// UpdateRestrictions replaces the user's restriction set; an empty id
// list clears it.
func (s *Service) UpdateRestrictions(ctx context.Context, sessionKey string, ids []int) (ports.RestrictionUpdateResult, error) {
	client, err := s.authedClient(ctx, sessionKey)
	if err != nil {
		return ports.RestrictionUpdateResult{}, err
	}
	return client.UpdateRestrictions(ctx, ids)
}
