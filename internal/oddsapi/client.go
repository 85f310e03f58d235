package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
)

// Client fetches live odds from The Odds API (v4)
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	regions    string
	markets    string
	logger     zerolog.Logger
}

// ClientConfig holds odds API client configuration
type ClientConfig struct {
	BaseURL           string // e.g., "https://api.the-odds-api.com"
	APIKey            string
	Regions           string // e.g., "us"
	Markets           string // e.g., "spreads,h2h,totals"
	Timeout           time.Duration
	RequestsPerMinute int
}

// NewClient creates a new odds API client
func NewClient(config ClientConfig, logger zerolog.Logger) *Client {
	limit := rate.Inf
	if config.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(config.RequestsPerMinute))
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		regions:    config.Regions,
		markets:    config.Markets,
		logger:     logger.With().Str("component", "odds_api_client").Logger(),
	}
}

// FetchOdds returns the upcoming games of a sport sorted by commence time
func (c *Client) FetchOdds(ctx context.Context, sport string) ([]models.Game, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", c.regions)
	params.Set("markets", c.markets)
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")

	endpoint := fmt.Sprintf("%s/v4/sports/%s/odds?%s", c.baseURL, url.PathEscape(sport), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch odds for %s: %w", sport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("failed to fetch odds for %s: %s: %s", sport, resp.Status, strings.TrimSpace(string(body)))
	}

	var games []models.Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("failed to decode odds for %s: %w", sport, err)
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CommenceTime.Before(games[j].CommenceTime)
	})

	c.logger.Info().
		Str("sport", sport).
		Int("games", len(games)).
		Str("requests_remaining", resp.Header.Get("x-requests-remaining")).
		Msg("fetched odds")

	return games, nil
}
