package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/parlay-recommender-service/internal/models"
)

// ErrEmptyCompletion is returned when the service answers without text
var ErrEmptyCompletion = errors.New("completion contained no text")

const systemPrompt = "You are a professional sports betting analyst providing concise, data-driven explanations for parlay bet combinations."

// Client calls an OpenAI-compatible chat completion endpoint
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	logger      zerolog.Logger
}

// ClientConfig holds explanation generator configuration
type ClientConfig struct {
	BaseURL     string // e.g., "https://api.openai.com/v1"
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// NewClient creates a new explanation client
func NewClient(config ClientConfig, logger zerolog.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: config.Timeout},
		baseURL:     strings.TrimRight(config.BaseURL, "/"),
		apiKey:      config.APIKey,
		model:       config.Model,
		maxTokens:   config.MaxTokens,
		temperature: config.Temperature,
		logger:      logger.With().Str("component", "explain_client").Logger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Explain asks the model for a two to three sentence rationale
func (c *Client) Explain(ctx context.Context, req models.ExplainRequest) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(req)},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("completion request failed: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var completion chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion: %w", err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	c.logger.Debug().
		Int("selections", len(req.Selections)).
		Msg("generated explanation")

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// BuildPrompt renders the user prompt for a recommendation
func BuildPrompt(req models.ExplainRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "As a sports betting expert, explain why this parlay combination is optimal for a $%.2f wager targeting $%.2f in winnings.\n\n",
		req.WagerAmount, req.TargetWinAmount)
	b.WriteString("Parlay Details:\n")
	fmt.Fprintf(&b, "- Combined Odds: %s\n", req.ParlayOdds)
	fmt.Fprintf(&b, "- Implied Probability: %s\n\n", req.ImpliedProbability)
	b.WriteString("Selected Bets:\n")
	for _, s := range req.Selections {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", s.Game, s.Pick, s.Odds)
	}
	b.WriteString("\nProvide a 2-3 sentence explanation focusing on:\n")
	b.WriteString("1. Risk vs reward balance\n")
	b.WriteString("2. Why these specific games/picks were chosen\n")
	b.WriteString("3. The mathematical reasoning behind the combination\n")

	return b.String()
}
