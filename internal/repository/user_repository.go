package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// GetOrCreate resolves a session token to a user id, creating the user
// atomically if the token has not been seen before. The upsert closes the
// race where two concurrent requests carrying the same unseen token would
// both miss a lookup and insert duplicate rows.
func (r *userRepository) GetOrCreate(ctx context.Context, sessionID string) (int64, error) {
	// DO UPDATE instead of DO NOTHING so RETURNING always yields a row.
	query := `
		INSERT INTO users (session_id)
		VALUES ($1)
		ON CONFLICT (session_id) DO UPDATE SET session_id = EXCLUDED.session_id
		RETURNING id
	`

	var userID int64
	err := r.pool.QueryRow(ctx, query, sessionID).Scan(&userID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to resolve user for session")
		return 0, fmt.Errorf("failed to resolve user for session: %w", err)
	}

	return userID, nil
}
