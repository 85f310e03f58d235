package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/parlay-recommender-service/internal/metrics"
	"github.com/cypherlabdev/parlay-recommender-service/internal/mocks"
	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/pkg/parlay"
)

// testServiceSetup is a helper struct to hold test dependencies
type testServiceSetup struct {
	service       *ParlayService
	mockCatalog   *mocks.MockCatalogProvider
	mockStore     *mocks.MockBetStore
	mockExplainer *mocks.MockExplainer
	metrics       *metrics.Metrics
	now           time.Time
	ctx           context.Context
}

// setupTestService creates a parlay service with mocked collaborators
func setupTestService(t *testing.T) *testServiceSetup {
	ctrl := gomock.NewController(t)

	mockCatalog := mocks.NewMockCatalogProvider(ctrl)
	mockStore := mocks.NewMockBetStore(ctrl)
	mockExplainer := mocks.NewMockExplainer(ctrl)
	m := metrics.New(prometheus.NewRegistry())

	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	svc := NewParlayService(
		parlay.NewSelector(parlay.DefaultParams()),
		mockCatalog,
		mockStore,
		mockExplainer,
		m,
		zerolog.Nop(),
	)
	svc.now = func() time.Time { return now }

	return &testServiceSetup{
		service:       svc,
		mockCatalog:   mockCatalog,
		mockStore:     mockStore,
		mockExplainer: mockExplainer,
		metrics:       m,
		now:           now,
		ctx:           context.Background(),
	}
}

// 2.6 * 2.5 = 6.5, so a $10 wager targeting $55 profit matches the top two
func testCatalog() []models.Bet {
	return []models.Bet{
		{Game: "Bruins @ Rangers", Pick: "Bruins ML", Odds: 150},
		{Game: "Lakers @ Warriors", Pick: "Warriors -5.5", Odds: -110},
		{Game: "Cubs @ Mets", Pick: "Cubs ML", Odds: 160},
	}
}

// TestRecommend_Matched tests the full pipeline for a reachable target
func TestRecommend_Matched(t *testing.T) {
	setup := setupTestService(t)
	req := models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 55}

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, []string(nil)).Return(testCatalog(), nil)
	setup.mockExplainer.EXPECT().Explain(setup.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, er models.ExplainRequest) (string, error) {
			assert.Equal(t, 10.0, er.WagerAmount)
			assert.Equal(t, 55.0, er.TargetWinAmount)
			assert.Equal(t, "+550", er.ParlayOdds)
			assert.Equal(t, "15.4%", er.ImpliedProbability)
			assert.Len(t, er.Selections, 2)
			return "Two plus-money legs.", nil
		})
	setup.mockStore.EXPECT().CreateParlayBet(setup.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, bet *models.ParlayBet) (int64, error) {
			bet.ID = 9
			return 9, nil
		})

	bet, err := setup.service.Recommend(setup.ctx, "user-1", req)

	require.NoError(t, err)
	assert.Equal(t, int64(9), bet.ID)
	assert.Equal(t, "user-1", bet.UserID)
	assert.True(t, decimal.NewFromInt(55).Equal(bet.TargetWinAmount))
	assert.True(t, decimal.NewFromInt(10).Equal(bet.WagerAmount))
	assert.Equal(t, setup.now, bet.CreatedAt)

	rec := bet.Recommendation
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.True(t, rec.Matched)
	assert.Equal(t, []models.Bet{
		{Game: "Cubs @ Mets", Pick: "Cubs ML", Odds: 160},
		{Game: "Bruins @ Rangers", Pick: "Bruins ML", Odds: 150},
	}, rec.Selections)
	assert.Equal(t, "+550", rec.ParlayOdds)
	assert.Equal(t, "65.00", rec.ExpectedPayout)
	assert.Equal(t, "15.4%", rec.ImpliedProbability)
	assert.Equal(t, "Two plus-money legs.", rec.Explanation)

	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.Recommendations.WithLabelValues("matched")))
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.Explanations.WithLabelValues("ok")))
}

// TestRecommend_Fallback tests that an unreachable target returns the top three
func TestRecommend_Fallback(t *testing.T) {
	setup := setupTestService(t)
	req := models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 1000, Sports: []string{"icehockey_nhl"}}

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, []string{"icehockey_nhl"}).Return(testCatalog(), nil)
	setup.mockExplainer.EXPECT().Explain(setup.ctx, gomock.Any()).Return("", nil)
	setup.mockStore.EXPECT().CreateParlayBet(setup.ctx, gomock.Any()).Return(int64(1), nil)

	bet, err := setup.service.Recommend(setup.ctx, "user-1", req)

	require.NoError(t, err)
	assert.False(t, bet.Recommendation.Matched)
	assert.Len(t, bet.Recommendation.Selections, 3)
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.Recommendations.WithLabelValues("fallback")))
}

// TestRecommend_InvalidRequest tests that bad amounts never reach the catalog
func TestRecommend_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  models.ParlayRequest
	}{
		{"zero wager", models.ParlayRequest{WagerAmount: 0, TargetWinAmount: 50}},
		{"negative target", models.ParlayRequest{WagerAmount: 10, TargetWinAmount: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTestService(t)

			bet, err := setup.service.Recommend(setup.ctx, "user-1", tt.req)

			assert.ErrorIs(t, err, models.ErrInvalidRequest)
			assert.Nil(t, bet)
			assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.RecommendErrors.WithLabelValues("invalid_request")))
		})
	}
}

// TestRecommend_CatalogError tests that catalog failures are wrapped
func TestRecommend_CatalogError(t *testing.T) {
	setup := setupTestService(t)
	catalogErr := errors.New("odds catalog unavailable")

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, gomock.Any()).Return(nil, catalogErr)

	_, err := setup.service.Recommend(setup.ctx, "user-1", models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 55})

	assert.ErrorIs(t, err, catalogErr)
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.RecommendErrors.WithLabelValues("catalog")))
}

// TestRecommend_InsufficientInventory tests a catalog with a single bet
func TestRecommend_InsufficientInventory(t *testing.T) {
	setup := setupTestService(t)

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, gomock.Any()).Return(testCatalog()[:1], nil)

	_, err := setup.service.Recommend(setup.ctx, "user-1", models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 55})

	assert.ErrorIs(t, err, parlay.ErrInsufficientInventory)
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.RecommendErrors.WithLabelValues("insufficient_inventory")))
}

// TestRecommend_InvalidOdds tests that zero odds in the catalog are rejected
func TestRecommend_InvalidOdds(t *testing.T) {
	setup := setupTestService(t)

	catalog := append(testCatalog(), models.Bet{Game: "A @ B", Pick: "A ML", Odds: 0})
	setup.mockCatalog.EXPECT().Catalog(setup.ctx, gomock.Any()).Return(catalog, nil)

	_, err := setup.service.Recommend(setup.ctx, "user-1", models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 55})

	assert.ErrorIs(t, err, parlay.ErrInvalidOdds)
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.RecommendErrors.WithLabelValues("invalid_odds")))
}

// TestRecommend_ExplainerErrorIgnored tests that explanation failures are not fatal
func TestRecommend_ExplainerErrorIgnored(t *testing.T) {
	setup := setupTestService(t)

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, gomock.Any()).Return(testCatalog(), nil)
	setup.mockExplainer.EXPECT().Explain(setup.ctx, gomock.Any()).Return("", errors.New("rate limited"))
	setup.mockStore.EXPECT().CreateParlayBet(setup.ctx, gomock.Any()).Return(int64(1), nil)

	bet, err := setup.service.Recommend(setup.ctx, "user-1", models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 55})

	require.NoError(t, err)
	assert.Empty(t, bet.Recommendation.Explanation)
	assert.Equal(t, 1.0, testutil.ToFloat64(setup.metrics.Explanations.WithLabelValues("error")))
}

// TestRecommend_NoExplainer tests a service built without an explainer
func TestRecommend_NoExplainer(t *testing.T) {
	setup := setupTestService(t)
	setup.service.explainer = nil

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, gomock.Any()).Return(testCatalog(), nil)
	setup.mockStore.EXPECT().CreateParlayBet(setup.ctx, gomock.Any()).Return(int64(1), nil)

	bet, err := setup.service.Recommend(setup.ctx, "user-1", models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 55})

	require.NoError(t, err)
	assert.Empty(t, bet.Recommendation.Explanation)
}

// TestRecommend_StoreErrorIgnored tests that persistence failures are not fatal
func TestRecommend_StoreErrorIgnored(t *testing.T) {
	setup := setupTestService(t)

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, gomock.Any()).Return(testCatalog(), nil)
	setup.mockExplainer.EXPECT().Explain(setup.ctx, gomock.Any()).Return("ok", nil)
	setup.mockStore.EXPECT().CreateParlayBet(setup.ctx, gomock.Any()).Return(int64(0), errors.New("db down"))

	bet, err := setup.service.Recommend(setup.ctx, "user-1", models.ParlayRequest{WagerAmount: 10, TargetWinAmount: 55})

	require.NoError(t, err)
	assert.Equal(t, int64(0), bet.ID)
	assert.True(t, bet.Recommendation.Matched)
}

// TestListBets tests limit normalization
func TestListBets(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default", 0, defaultListLimit},
		{"negative", -3, defaultListLimit},
		{"explicit", 5, 5},
		{"capped", 1000, maxListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTestService(t)
			stored := []*models.ParlayBet{{ID: 1, UserID: "user-1"}}

			setup.mockStore.EXPECT().ListParlayBets(setup.ctx, "user-1", tt.wantLimit).Return(stored, nil)

			bets, err := setup.service.ListBets(setup.ctx, "user-1", tt.limit)

			require.NoError(t, err)
			assert.Equal(t, stored, bets)
		})
	}
}

// TestListBets_Error tests that store errors are wrapped
func TestListBets_Error(t *testing.T) {
	setup := setupTestService(t)

	setup.mockStore.EXPECT().ListParlayBets(setup.ctx, "user-1", defaultListLimit).Return(nil, errors.New("db down"))

	_, err := setup.service.ListBets(setup.ctx, "user-1", 0)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list parlay bets")
}

// TestOdds tests the single-sport catalog lookup
func TestOdds(t *testing.T) {
	setup := setupTestService(t)

	setup.mockCatalog.EXPECT().Catalog(setup.ctx, []string{"basketball_nba"}).Return(testCatalog(), nil)

	bets, err := setup.service.Odds(setup.ctx, "basketball_nba")

	require.NoError(t, err)
	assert.Equal(t, testCatalog(), bets)
}
