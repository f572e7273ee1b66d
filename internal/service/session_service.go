package service

import (
	"context"
	"fmt"

	"souled-store/internal/repository"

	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(userRepo repository.UserRepository, logger zerolog.Logger) SessionService {
	return &sessionService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "session").Logger(),
	}
}

// Resolve maps a session token to a user id, creating the user on first
// contact.
func (s *sessionService) Resolve(ctx context.Context, sessionToken string) (int64, error) {
	if sessionToken == "" {
		return 0, fmt.Errorf("session token is empty")
	}

	userID, err := s.userRepo.GetOrCreate(ctx, sessionToken)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to resolve session")
		return 0, fmt.Errorf("failed to resolve session: %w", err)
	}

	return userID, nil
}
