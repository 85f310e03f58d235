package oddsapi

import (
	"strconv"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/pkg/odds"
)

// Market keys requested from the provider
const (
	MarketMoneyline = "h2h"
	MarketSpreads   = "spreads"
	MarketTotals    = "totals"
)

// FormatOdds flattens games into catalog bets using each game's first
// bookmaker. Moneylines come first, then spreads, then totals. Outcomes
// with a zero price or a missing line are dropped, and repeated game/pick
// pairs keep their first price.
func FormatOdds(games []models.Game) []models.Bet {
	var bets []models.Bet
	seen := make(map[[2]string]struct{})

	add := func(bet models.Bet) {
		key := [2]string{bet.Game, bet.Pick}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		bets = append(bets, bet)
	}

	for _, game := range games {
		if len(game.Bookmakers) == 0 {
			continue
		}
		bookmaker := game.Bookmakers[0]
		label := game.Label()

		for _, key := range []string{MarketMoneyline, MarketSpreads, MarketTotals} {
			market, ok := findMarket(bookmaker, key)
			if !ok {
				continue
			}
			for _, outcome := range market.Outcomes {
				if outcome.Price == 0 {
					continue
				}
				pick, ok := formatPick(key, outcome)
				if !ok {
					continue
				}
				add(models.Bet{Game: label, Pick: pick, Odds: odds.American(outcome.Price)})
			}
		}
	}

	return bets
}

func findMarket(bookmaker models.Bookmaker, key string) (models.Market, bool) {
	for _, m := range bookmaker.Markets {
		if m.Key == key {
			return m, true
		}
	}
	return models.Market{}, false
}

func formatPick(market string, outcome models.Outcome) (string, bool) {
	switch market {
	case MarketMoneyline:
		return outcome.Name + " ML", true
	case MarketSpreads:
		if outcome.Point == nil {
			return "", false
		}
		line := formatPoint(*outcome.Point)
		if *outcome.Point >= 0 {
			line = "+" + line
		}
		return outcome.Name + " " + line, true
	case MarketTotals:
		if outcome.Point == nil {
			return "", false
		}
		return outcome.Name + " " + formatPoint(*outcome.Point), true
	}
	return "", false
}

func formatPoint(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
