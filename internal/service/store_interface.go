package service

import (
	"context"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
)

// BetStore abstracts persistence of recommended parlays
type BetStore interface {
	CreateParlayBet(ctx context.Context, bet *models.ParlayBet) (int64, error)
	ListParlayBets(ctx context.Context, userID string, limit int) ([]*models.ParlayBet, error)
	Ping(ctx context.Context) error
}

// Explainer produces a human-readable rationale for a recommendation
type Explainer interface {
	Explain(ctx context.Context, req models.ExplainRequest) (string, error)
}
