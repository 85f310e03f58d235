package service

import (
	"context"
	"time"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
)

// SnapshotCache is an interface that abstracts the per-sport odds cache
// This allows for easier testing and mocking
type SnapshotCache interface {
	Set(ctx context.Context, snapshot *models.OddsSnapshot) error
	Get(ctx context.Context, sport string) (*models.OddsSnapshot, error)
	IsFresh(snapshot *models.OddsSnapshot, now time.Time) bool
	Ping(ctx context.Context) error
	Close() error
}
