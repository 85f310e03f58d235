package parlay

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/pkg/odds"
)

// Quote prices a set of bets as one parlay for the given wager
func Quote(wager float64, bets []models.Bet) (models.ParlayQuote, error) {
	if len(bets) == 0 {
		return models.ParlayQuote{}, fmt.Errorf("%w: no selections to quote", ErrInsufficientInventory)
	}

	decimals := make([]float64, len(bets))
	for i, bet := range bets {
		d, err := odds.AmericanToDecimal(bet.Odds)
		if err != nil {
			return models.ParlayQuote{}, fmt.Errorf("%w: %s / %s: %w", ErrInvalidOdds, bet.Game, bet.Pick, err)
		}
		decimals[i] = d
	}

	combined := odds.CalculateParlayOdds(decimals)
	american, err := odds.FormatAmerican(combined)
	if err != nil {
		return models.ParlayQuote{}, fmt.Errorf("failed to format parlay odds: %w", err)
	}

	payout := decimal.NewFromFloat(odds.CalculateParlayPayout(wager, combined))
	probability := decimal.NewFromFloat(odds.DecimalToProbability(combined) * 100)

	return models.ParlayQuote{
		DecimalOdds:        combined,
		ParlayOdds:         american,
		ExpectedPayout:     payout.StringFixed(2),
		ImpliedProbability: probability.StringFixed(1) + "%",
	}, nil
}
