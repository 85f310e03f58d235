package parlay

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/pkg/odds"
)

// ErrInsufficientInventory is returned when the catalog cannot fill a parlay
var ErrInsufficientInventory = errors.New("insufficient inventory to build a parlay")

// ErrInvalidOdds wraps catalog entries whose odds cannot be converted
var ErrInvalidOdds = errors.New("invalid odds in catalog")

// Order is the direction the catalog is sorted in before windowing
type Order string

const (
	// OrderDescending tries the highest-paying bets first
	OrderDescending Order = "descending"
	// OrderAscending tries the safest bets first
	OrderAscending Order = "ascending"
)

// Params configures the window search
type Params struct {
	MinPicks      int     // Smallest parlay tried (2)
	MaxPicks      int     // Largest parlay tried (4)
	FallbackPicks int     // Size of the fallback parlay (3)
	Tolerance     float64 // Accepted relative distance from target payout (0.10 = ±10%)
	Order         Order
}

// DefaultParams returns the canonical search policy
func DefaultParams() Params {
	return Params{
		MinPicks:      2,
		MaxPicks:      4,
		FallbackPicks: 3,
		Tolerance:     0.10,
		Order:         OrderDescending,
	}
}

// Selection is the outcome of one search
type Selection struct {
	Bets         []models.Bet
	Matched      bool    // false when the fallback was used
	Picks        int     // window size of the accepted window
	Start        int     // start index of the accepted window in the sorted catalog
	DecimalOdds  float64 // combined decimal odds of Bets
	RequiredOdds float64 // target payout / wager, diagnostic only
}

// Selector picks contiguous windows of a sorted catalog whose parlay payout
// lands near a target. It holds no state between calls.
type Selector struct {
	params Params
}

// NewSelector creates a selector, filling unset params from DefaultParams
func NewSelector(params Params) *Selector {
	def := DefaultParams()
	if params.MinPicks <= 0 {
		params.MinPicks = def.MinPicks
	}
	if params.MaxPicks < params.MinPicks {
		params.MaxPicks = max(def.MaxPicks, params.MinPicks)
	}
	if params.FallbackPicks <= 0 {
		params.FallbackPicks = def.FallbackPicks
	}
	if params.Tolerance <= 0 {
		params.Tolerance = def.Tolerance
	}
	if params.Order != OrderAscending {
		params.Order = OrderDescending
	}
	return &Selector{params: params}
}

// Params returns the effective search parameters
func (s *Selector) Params() Params {
	return s.params
}

// FindOptimalParlay runs the default search policy
func FindOptimalParlay(targetPayout, wager float64, catalog []models.Bet) ([]models.Bet, error) {
	sel, err := NewSelector(DefaultParams()).Select(targetPayout, wager, catalog)
	if err != nil {
		return nil, err
	}
	return sel.Bets, nil
}

// Select searches window sizes MinPicks..MaxPicks over the sorted catalog and
// returns the first window whose payout is within tolerance of targetPayout.
// Ties are broken by window size, then by window start. When no window
// qualifies the FallbackPicks highest-priced bets are returned.
func (s *Selector) Select(targetPayout, wager float64, catalog []models.Bet) (*Selection, error) {
	if !(wager > 0) || !(targetPayout > 0) {
		return nil, models.ErrInvalidRequest
	}

	decorated, err := decorate(catalog)
	if err != nil {
		return nil, err
	}
	if len(decorated) < s.params.MinPicks {
		return nil, fmt.Errorf("%w: have %d bets, need %d", ErrInsufficientInventory, len(decorated), s.params.MinPicks)
	}

	sorted := sortByDecimal(decorated, s.params.Order)
	low := targetPayout * (1 - s.params.Tolerance)
	high := targetPayout * (1 + s.params.Tolerance)

	maxPicks := min(s.params.MaxPicks, len(sorted))
	for picks := s.params.MinPicks; picks <= maxPicks; picks++ {
		for start := 0; start+picks <= len(sorted); start++ {
			window := sorted[start : start+picks]
			combined := combinedOdds(window)
			payout := odds.CalculateParlayPayout(wager, combined)

			if payout >= low && payout <= high {
				return &Selection{
					Bets:         strip(window),
					Matched:      true,
					Picks:        picks,
					Start:        start,
					DecimalOdds:  combined,
					RequiredOdds: targetPayout / wager,
				}, nil
			}
		}
	}

	// Fallback is always the top of the descending order, whatever the search order was
	top := sortByDecimal(decorated, OrderDescending)
	top = top[:min(s.params.FallbackPicks, len(top))]

	return &Selection{
		Bets:         strip(top),
		Matched:      false,
		Picks:        len(top),
		DecimalOdds:  combinedOdds(top),
		RequiredOdds: targetPayout / wager,
	}, nil
}

func decorate(catalog []models.Bet) ([]models.DecoratedBet, error) {
	decorated := make([]models.DecoratedBet, len(catalog))
	for i, bet := range catalog {
		d, err := odds.AmericanToDecimal(bet.Odds)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d (%s / %s): %w", ErrInvalidOdds, i, bet.Game, bet.Pick, err)
		}
		decorated[i] = models.DecoratedBet{Bet: bet, DecimalOdds: d}
	}
	return decorated, nil
}

// sortByDecimal returns a sorted copy; equal prices keep catalog order
func sortByDecimal(bets []models.DecoratedBet, order Order) []models.DecoratedBet {
	sorted := make([]models.DecoratedBet, len(bets))
	copy(sorted, bets)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderAscending {
			return sorted[i].DecimalOdds < sorted[j].DecimalOdds
		}
		return sorted[i].DecimalOdds > sorted[j].DecimalOdds
	})
	return sorted
}

func combinedOdds(bets []models.DecoratedBet) float64 {
	decimals := make([]float64, len(bets))
	for i, b := range bets {
		decimals[i] = b.DecimalOdds
	}
	return odds.CalculateParlayOdds(decimals)
}

func strip(bets []models.DecoratedBet) []models.Bet {
	out := make([]models.Bet, len(bets))
	for i, b := range bets {
		out[i] = b.Bet
	}
	return out
}
