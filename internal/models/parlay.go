package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/parlay-recommender-service/pkg/odds"
)

// ErrInvalidRequest is returned for non-positive wager or target amounts
var ErrInvalidRequest = errors.New("wager and target win amounts must be positive")

// Bet is a single wagering opportunity from the catalog
type Bet struct {
	Game string        `json:"game"` // e.g. "Team A @ Team B"
	Pick string        `json:"pick"` // e.g. "Team A -5.5", "Over 220.5", "Team A ML"
	Odds odds.American `json:"odds"`
}

// DecoratedBet is a Bet with its decimal odds computed for one selection run
type DecoratedBet struct {
	Bet
	DecimalOdds float64
}

// ParlayRequest holds the user's wager and desired profit
type ParlayRequest struct {
	WagerAmount     float64  `json:"wager_amount"`
	TargetWinAmount float64  `json:"target_win_amount"`
	Sports          []string `json:"sports,omitempty"`
}

// TargetPayout is the total return the selector aims for (profit plus stake)
func (r ParlayRequest) TargetPayout() float64 {
	return r.TargetWinAmount + r.WagerAmount
}

// Validate rejects requests the selector must never see
func (r ParlayRequest) Validate() error {
	if !(r.WagerAmount > 0) || !(r.TargetWinAmount > 0) {
		return ErrInvalidRequest
	}
	return nil
}

// ParlayQuote holds the combined pricing of a chosen set of bets
type ParlayQuote struct {
	DecimalOdds        float64 `json:"decimal_odds"`
	ParlayOdds         string  `json:"parlay_odds"`         // American, e.g. "+650"
	ExpectedPayout     string  `json:"expected_payout"`     // Two decimals, e.g. "75.00"
	ImpliedProbability string  `json:"implied_probability"` // One decimal, e.g. "13.3%"
}

// ParlayRecommendation is the response for one calculation request
type ParlayRecommendation struct {
	ID         uuid.UUID `json:"id"`
	Selections []Bet     `json:"selections"`
	ParlayQuote
	Matched     bool      `json:"matched"` // false when the fallback selection was used
	Explanation string    `json:"explanation,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ParlayBet is a stored recommendation together with the request that produced it
type ParlayBet struct {
	ID              int64                `json:"id"`
	UserID          string               `json:"user_id"`
	TargetWinAmount decimal.Decimal      `json:"target_win_amount"`
	WagerAmount     decimal.Decimal      `json:"wager_amount"`
	Recommendation  ParlayRecommendation `json:"recommendation"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ExplainRequest carries what the explanation generator needs to describe a parlay
type ExplainRequest struct {
	WagerAmount        float64
	TargetWinAmount    float64
	Selections         []Bet
	ParlayOdds         string
	ImpliedProbability string
}
