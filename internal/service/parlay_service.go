package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/parlay-recommender-service/internal/metrics"
	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/pkg/parlay"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ParlayService orchestrates catalog loading, selection and persistence
type ParlayService struct {
	selector  *parlay.Selector
	catalog   CatalogProvider
	store     BetStore
	explainer Explainer
	metrics   *metrics.Metrics
	logger    zerolog.Logger
	now       func() time.Time
}

// NewParlayService creates a new parlay service. explainer may be nil, in
// which case recommendations carry no explanation.
func NewParlayService(
	selector *parlay.Selector,
	catalog CatalogProvider,
	store BetStore,
	explainer Explainer,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *ParlayService {
	return &ParlayService{
		selector:  selector,
		catalog:   catalog,
		store:     store,
		explainer: explainer,
		metrics:   m,
		logger:    logger.With().Str("component", "parlay_service").Logger(),
		now:       time.Now,
	}
}

// Recommend builds, explains and stores a parlay recommendation for userID
func (s *ParlayService) Recommend(ctx context.Context, userID string, req models.ParlayRequest) (*models.ParlayBet, error) {
	if err := req.Validate(); err != nil {
		s.metrics.RecommendErrors.WithLabelValues("invalid_request").Inc()
		return nil, err
	}

	bets, err := s.catalog.Catalog(ctx, req.Sports)
	if err != nil {
		s.metrics.RecommendErrors.WithLabelValues("catalog").Inc()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	s.metrics.CatalogSize.Observe(float64(len(bets)))

	selection, err := s.selector.Select(req.TargetPayout(), req.WagerAmount, bets)
	if err != nil {
		s.metrics.RecommendErrors.WithLabelValues(selectionErrorReason(err)).Inc()
		return nil, fmt.Errorf("selection failed: %w", err)
	}

	quote, err := parlay.Quote(req.WagerAmount, selection.Bets)
	if err != nil {
		s.metrics.RecommendErrors.WithLabelValues("quote").Inc()
		return nil, fmt.Errorf("failed to quote parlay: %w", err)
	}

	now := s.now().UTC()
	recommendation := models.ParlayRecommendation{
		ID:          uuid.New(),
		Selections:  selection.Bets,
		ParlayQuote: quote,
		Matched:     selection.Matched,
		CreatedAt:   now,
	}
	recommendation.Explanation = s.explain(ctx, req, recommendation)

	bet := &models.ParlayBet{
		UserID:          userID,
		TargetWinAmount: decimal.NewFromFloat(req.TargetWinAmount),
		WagerAmount:     decimal.NewFromFloat(req.WagerAmount),
		Recommendation:  recommendation,
		CreatedAt:       now,
	}

	if _, err := s.store.CreateParlayBet(ctx, bet); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Str("recommendation_id", recommendation.ID.String()).
			Msg("failed to store parlay bet")
		// Don't fail the request on storage errors
	}

	outcome := "matched"
	if !selection.Matched {
		outcome = "fallback"
	}
	s.metrics.Recommendations.WithLabelValues(outcome).Inc()
	s.metrics.SelectionLegs.Observe(float64(len(selection.Bets)))

	s.logger.Info().
		Str("user_id", userID).
		Str("recommendation_id", recommendation.ID.String()).
		Int("catalog_size", len(bets)).
		Int("legs", len(selection.Bets)).
		Bool("matched", selection.Matched).
		Str("parlay_odds", quote.ParlayOdds).
		Str("expected_payout", quote.ExpectedPayout).
		Msg("recommended parlay")

	return bet, nil
}

// explain returns an empty string when no explainer is configured or it fails
func (s *ParlayService) explain(ctx context.Context, req models.ParlayRequest, rec models.ParlayRecommendation) string {
	if s.explainer == nil {
		return ""
	}

	text, err := s.explainer.Explain(ctx, models.ExplainRequest{
		WagerAmount:        req.WagerAmount,
		TargetWinAmount:    req.TargetWinAmount,
		Selections:         rec.Selections,
		ParlayOdds:         rec.ParlayOdds,
		ImpliedProbability: rec.ImpliedProbability,
	})
	if err != nil {
		s.metrics.Explanations.WithLabelValues("error").Inc()
		s.logger.Warn().
			Err(err).
			Str("recommendation_id", rec.ID.String()).
			Msg("failed to generate explanation")
		return ""
	}

	s.metrics.Explanations.WithLabelValues("ok").Inc()
	return text
}

// ListBets returns the user's past recommendations, newest first
func (s *ParlayService) ListBets(ctx context.Context, userID string, limit int) ([]*models.ParlayBet, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	bets, err := s.store.ListParlayBets(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list parlay bets: %w", err)
	}

	s.logger.Debug().
		Str("user_id", userID).
		Int("count", len(bets)).
		Msg("listed parlay bets")

	return bets, nil
}

// Odds returns the normalized catalog of a single sport
func (s *ParlayService) Odds(ctx context.Context, sport string) ([]models.Bet, error) {
	bets, err := s.catalog.Catalog(ctx, []string{sport})
	if err != nil {
		return nil, fmt.Errorf("failed to load odds for %s: %w", sport, err)
	}
	return bets, nil
}

func selectionErrorReason(err error) string {
	switch {
	case errors.Is(err, parlay.ErrInsufficientInventory):
		return "insufficient_inventory"
	case errors.Is(err, parlay.ErrInvalidOdds):
		return "invalid_odds"
	case errors.Is(err, models.ErrInvalidRequest):
		return "invalid_request"
	default:
		return "selection"
	}
}
