package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cypherlabdev/parlay-recommender-service/internal/cache"
	"github.com/cypherlabdev/parlay-recommender-service/internal/metrics"
	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/internal/oddsapi"
	"github.com/cypherlabdev/parlay-recommender-service/internal/service"
)

// ErrCatalogUnavailable is returned when no requested sport could be loaded
var ErrCatalogUnavailable = errors.New("odds catalog unavailable")

// maxConcurrentFetches bounds parallel calls to the odds provider
const maxConcurrentFetches = 4

// Provider builds bet catalogs from cached or freshly fetched odds. It owns
// the snapshot cache; the selector never sees it.
type Provider struct {
	cache   service.SnapshotCache
	fetcher service.OddsFetcher
	sports  []string
	metrics *metrics.Metrics
	logger  zerolog.Logger
	now     func() time.Time
}

// NewProvider creates a catalog provider serving defaultSports when a
// request names none
func NewProvider(
	cache service.SnapshotCache,
	fetcher service.OddsFetcher,
	defaultSports []string,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *Provider {
	return &Provider{
		cache:   cache,
		fetcher: fetcher,
		sports:  defaultSports,
		metrics: m,
		logger:  logger.With().Str("component", "catalog_provider").Logger(),
		now:     time.Now,
	}
}

// Catalog returns the bets of the given sports, in sport order. Sports that
// fail to load are skipped; if all fail ErrCatalogUnavailable is returned.
func (p *Provider) Catalog(ctx context.Context, sports []string) ([]models.Bet, error) {
	if len(sports) == 0 {
		sports = p.sports
	}
	if len(sports) == 0 {
		return nil, fmt.Errorf("%w: no sports configured", ErrCatalogUnavailable)
	}

	snapshots := make([]*models.OddsSnapshot, len(sports))
	errs := make([]error, len(sports))

	var g errgroup.Group
	g.SetLimit(maxConcurrentFetches)
	for i, sport := range sports {
		i, sport := i, sport
		g.Go(func() error {
			snapshots[i], errs[i] = p.Snapshot(ctx, sport)
			return nil
		})
	}
	_ = g.Wait()

	var bets []models.Bet
	loaded := 0
	for i, snapshot := range snapshots {
		if errs[i] != nil {
			p.logger.Warn().
				Err(errs[i]).
				Str("sport", sports[i]).
				Msg("skipping sport, odds unavailable")
			continue
		}
		loaded++
		bets = append(bets, oddsapi.FormatOdds(snapshot.Games)...)
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, errors.Join(errs...))
	}

	p.logger.Debug().
		Strs("sports", sports).
		Int("bets", len(bets)).
		Msg("built catalog")

	return bets, nil
}

// Snapshot returns a fresh snapshot for one sport, fetching on a miss or when
// the cached copy is stale. A stale copy is served if the fetch fails.
func (p *Provider) Snapshot(ctx context.Context, sport string) (*models.OddsSnapshot, error) {
	now := p.now()

	cached, err := p.cache.Get(ctx, sport)
	if err != nil {
		cached = nil
		if !errors.Is(err, cache.ErrCacheMiss) {
			p.logger.Warn().Err(err).Str("sport", sport).Msg("cache error, fetching odds")
		}
	}

	switch {
	case cached != nil && p.cache.IsFresh(cached, now):
		p.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	case cached != nil:
		p.metrics.CacheLookups.WithLabelValues("stale").Inc()
	default:
		p.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	games, err := p.fetcher.FetchOdds(ctx, sport)
	if err != nil {
		p.metrics.OddsFetches.WithLabelValues(sport, "error").Inc()
		if cached != nil {
			p.logger.Warn().
				Err(err).
				Str("sport", sport).
				Time("fetched_at", cached.FetchedAt).
				Msg("odds fetch failed, serving stale snapshot")
			return cached, nil
		}
		return nil, err
	}
	p.metrics.OddsFetches.WithLabelValues(sport, "ok").Inc()

	snapshot := &models.OddsSnapshot{
		SportKey:  sport,
		Games:     games,
		FetchedAt: now,
	}

	if err := p.cache.Set(ctx, snapshot); err != nil {
		p.logger.Warn().
			Err(err).
			Str("sport", sport).
			Msg("failed to cache odds snapshot")
		// Don't fail the request on cache errors
	}

	return snapshot, nil
}
