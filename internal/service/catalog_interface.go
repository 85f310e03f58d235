package service

import (
	"context"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
)

// OddsFetcher abstracts the live-odds provider
type OddsFetcher interface {
	FetchOdds(ctx context.Context, sport string) ([]models.Game, error)
}

// CatalogProvider supplies validated bet catalogs to the selector
type CatalogProvider interface {
	Catalog(ctx context.Context, sports []string) ([]models.Bet, error)
}
