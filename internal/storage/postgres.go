package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS parlay_bets (
	id BIGSERIAL PRIMARY KEY,
	user_id VARCHAR(255) NOT NULL,
	target_win_amount NUMERIC(14, 2) NOT NULL,
	wager_amount NUMERIC(14, 2) NOT NULL,
	recommendation JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_parlay_bets_user_created ON parlay_bets(user_id, created_at DESC);
`

// PostgresStore persists recommended parlays per user
type PostgresStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewPostgresStore opens a connection pool for dsn
func NewPostgresStore(dsn string, logger zerolog.Logger) (*PostgresStore, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return NewPostgresStoreFromDB(db, logger), nil
}

// NewPostgresStoreFromDB wraps an existing pool
func NewPostgresStoreFromDB(db *sql.DB, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: logger.With().Str("component", "postgres_store").Logger(),
	}
}

// InitSchema creates the parlay_bets table if it does not exist
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// CreateParlayBet inserts a bet and sets its ID and creation time
func (s *PostgresStore) CreateParlayBet(ctx context.Context, bet *models.ParlayBet) (int64, error) {
	recommendation, err := json.Marshal(bet.Recommendation)
	if err != nil {
		return 0, fmt.Errorf("marshal recommendation: %w", err)
	}

	query := `
		INSERT INTO parlay_bets (user_id, target_win_amount, wager_amount, recommendation, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	createdAt := bet.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var id int64
	err = s.db.QueryRowContext(ctx, query,
		bet.UserID,
		bet.TargetWinAmount,
		bet.WagerAmount,
		recommendation,
		createdAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert parlay bet: %w", err)
	}

	bet.ID = id
	bet.CreatedAt = createdAt

	s.logger.Debug().
		Int64("id", id).
		Str("user_id", bet.UserID).
		Msg("stored parlay bet")

	return id, nil
}

// ListParlayBets returns a user's bets, newest first
func (s *PostgresStore) ListParlayBets(ctx context.Context, userID string, limit int) ([]*models.ParlayBet, error) {
	query := `
		SELECT id, user_id, target_win_amount, wager_amount, recommendation, created_at
		FROM parlay_bets
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query parlay bets: %w", err)
	}
	defer rows.Close()

	bets := make([]*models.ParlayBet, 0)
	for rows.Next() {
		var bet models.ParlayBet
		var recommendation []byte

		if err := rows.Scan(
			&bet.ID,
			&bet.UserID,
			&bet.TargetWinAmount,
			&bet.WagerAmount,
			&recommendation,
			&bet.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan parlay bet: %w", err)
		}

		if err := json.Unmarshal(recommendation, &bet.Recommendation); err != nil {
			return nil, fmt.Errorf("parse recommendation of bet %d: %w", bet.ID, err)
		}

		bets = append(bets, &bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate parlay bets: %w", err)
	}

	return bets, nil
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
