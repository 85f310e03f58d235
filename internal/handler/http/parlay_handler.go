package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-recommender-service/internal/catalog"
	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
	"github.com/cypherlabdev/parlay-recommender-service/pkg/parlay"
)

// UserIDHeader carries the caller identity set by the upstream gateway
const UserIDHeader = "X-User-ID"

// maxBodyBytes bounds the size of a calculation request
const maxBodyBytes = 1 << 16

// Recommender is the service surface the handler depends on
type Recommender interface {
	Recommend(ctx context.Context, userID string, req models.ParlayRequest) (*models.ParlayBet, error)
	ListBets(ctx context.Context, userID string, limit int) ([]*models.ParlayBet, error)
	Odds(ctx context.Context, sport string) ([]models.Bet, error)
}

// ParlayHandler handles HTTP requests for parlay recommendations
type ParlayHandler struct {
	service Recommender
	logger  zerolog.Logger
}

// NewParlayHandler creates a new parlay HTTP handler
func NewParlayHandler(service Recommender, logger zerolog.Logger) *ParlayHandler {
	return &ParlayHandler{
		service: service,
		logger:  logger.With().Str("component", "parlay_handler").Logger(),
	}
}

// RegisterRoutes registers HTTP routes with the provided router
func (h *ParlayHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/parlay-calc", h.handleParlayCalc)
		r.Get("/users/bets", h.handleListBets)
		r.Get("/odds/{sport}", h.handleGetOdds)
	})
}

// handleParlayCalc handles POST /api/v1/parlay-calc
func (h *ParlayHandler) handleParlayCalc(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(UserIDHeader)
	if userID == "" {
		h.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.ParlayRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	bet, err := h.service.Recommend(r.Context(), userID, req)
	if err != nil {
		status, message := statusFor(err)
		event := h.logger.Warn()
		if status >= http.StatusInternalServerError {
			event = h.logger.Error()
		}
		event.Err(err).
			Str("user_id", userID).
			Float64("wager_amount", req.WagerAmount).
			Float64("target_win_amount", req.TargetWinAmount).
			Msg("parlay calculation failed")
		h.errorResponse(w, status, message)
		return
	}

	h.jsonResponse(w, http.StatusOK, bet)
}

// handleListBets handles GET /api/v1/users/bets?limit=
func (h *ParlayHandler) handleListBets(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(UserIDHeader)
	if userID == "" {
		h.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	bets, err := h.service.ListBets(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to list bets")
		h.errorResponse(w, http.StatusInternalServerError, "failed to fetch bets")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count": len(bets),
		"bets":  bets,
	})
}

// handleGetOdds handles GET /api/v1/odds/{sport}
func (h *ParlayHandler) handleGetOdds(w http.ResponseWriter, r *http.Request) {
	sport := chi.URLParam(r, "sport")

	bets, err := h.service.Odds(r.Context(), sport)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("sport", sport).
			Msg("failed to load odds")
		status, message := statusFor(err)
		h.errorResponse(w, status, message)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"sport": sport,
		"count": len(bets),
		"bets":  bets,
	})
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, parlay.ErrInvalidOdds):
		return http.StatusBadRequest, "catalog contains invalid odds"
	case errors.Is(err, parlay.ErrInsufficientInventory):
		return http.StatusUnprocessableEntity, "not enough bets available to build a parlay"
	case errors.Is(err, catalog.ErrCatalogUnavailable):
		return http.StatusBadGateway, "odds provider unavailable"
	default:
		return http.StatusInternalServerError, "failed to calculate parlay"
	}
}

// jsonResponse writes a JSON response
func (h *ParlayHandler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes a JSON error response
func (h *ParlayHandler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
