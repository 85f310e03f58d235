package models

import (
	"time"
)

// Outcome is one priced side of a market as returned by the odds provider
type Outcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`           // American odds
	Point *float64 `json:"point,omitempty"` // Spread or total line
}

// Market groups the outcomes of one market type (h2h, spreads, totals)
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Bookmaker is one book's view of a game
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Game is an upcoming event with the books' prices
type Game struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Label returns the display label used for bets on this game
func (g Game) Label() string {
	return g.AwayTeam + " @ " + g.HomeTeam
}

// OddsSnapshot is the set of games fetched for one sport at a point in time
type OddsSnapshot struct {
	SportKey  string    `json:"sport_key"`
	Games     []Game    `json:"games"`
	FetchedAt time.Time `json:"fetched_at"`
}

// KafkaOddsSnapshotMessage represents the Kafka message published by odds ingestion
type KafkaOddsSnapshotMessage struct {
	SportKey  string    `json:"sport_key"`
	Games     []Game    `json:"games"`
	FetchedAt time.Time `json:"fetched_at"`
	BatchID   string    `json:"batch_id"`
}

// Snapshot converts the message into a cacheable snapshot
func (m KafkaOddsSnapshotMessage) Snapshot() *OddsSnapshot {
	return &OddsSnapshot{
		SportKey:  m.SportKey,
		Games:     m.Games,
		FetchedAt: m.FetchedAt,
	}
}
