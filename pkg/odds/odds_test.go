package odds

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmericanToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		odds     American
		expected float64
	}{
		{"Even money +100", 100, 2.0},
		{"Even money -100", -100, 2.0},
		{"Underdog +150", 150, 2.5},
		{"Favorite -150", -150, 1.6667},
		{"Standard -110", -110, 1.9091},
		{"Longshot +650", 650, 7.5},
		{"Heavy favorite -2000", -2000, 1.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AmericanToDecimal(tt.odds)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, result, 0.0001)
		})
	}
}

func TestAmericanToDecimal_Zero(t *testing.T) {
	_, err := AmericanToDecimal(0)
	assert.ErrorIs(t, err, ErrZeroOdds)
}

func TestAmericanToDecimal_Monotonic(t *testing.T) {
	prev := 1.0
	for o := 100; o <= 5000; o += 25 {
		d, err := AmericanToDecimal(American(o))
		require.NoError(t, err)
		assert.Greater(t, d, prev, "positive odds %d", o)
		prev = d
	}

	prev = 3.0
	for o := -100; o >= -5000; o -= 25 {
		d, err := AmericanToDecimal(American(o))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d, 1.0)
		assert.Less(t, d, prev, "negative odds %d", o)
		prev = d
	}
}

func TestRoundTrip(t *testing.T) {
	for _, o := range []American{150, -110, 650, -2000, 100, -105, 120, -300, 1200} {
		d, err := AmericanToDecimal(o)
		require.NoError(t, err)

		back, err := DecimalToAmerican(d)
		require.NoError(t, err)
		assert.InDelta(t, int(o), int(back), 1, "round trip of %s", o)
	}
}

func TestFormatAmerican(t *testing.T) {
	tests := []struct {
		decimal  float64
		expected string
	}{
		{7.5, "+650"},
		{2.0, "+100"},
		{2.5, "+150"},
		{1.9091, "-110"},
		{1.5, "-200"},
		{13.254, "+1225"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			s, err := FormatAmerican(tt.decimal)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestFormatAmerican_Invalid(t *testing.T) {
	for _, d := range []float64{1.0, 0.5, 0, -2} {
		_, err := FormatAmerican(d)
		assert.ErrorIs(t, err, ErrInvalidDecimal)
	}
}

func TestDecimalToProbability(t *testing.T) {
	assert.InDelta(t, 0.4, DecimalToProbability(2.5), 0.0001)
	assert.InDelta(t, 0.5, DecimalToProbability(2.0), 0.0001)
	assert.InDelta(t, 1.0, DecimalToProbability(1.0), 0.0001)
}

func TestCalculateParlayOdds(t *testing.T) {
	assert.Equal(t, 1.0, CalculateParlayOdds(nil))
	assert.Equal(t, 1.0, CalculateParlayOdds([]float64{}))
	assert.Equal(t, 2.5, CalculateParlayOdds([]float64{2.5}))

	a := CalculateParlayOdds([]float64{1.9, 2.5, 1.5})
	b := CalculateParlayOdds([]float64{1.5, 1.9, 2.5})
	assert.InDelta(t, a, b, 1e-9)
	assert.InDelta(t, 7.125, a, 1e-9)
}

func TestCalculateParlayPayout(t *testing.T) {
	for _, wager := range []float64{1, 10, 37.5, 1000} {
		payout := CalculateParlayPayout(wager, 6.5)
		assert.InDelta(t, 6.5, payout/wager, 1e-9)
	}
}

func TestParseAmerican(t *testing.T) {
	tests := []struct {
		input    string
		expected American
		err      error
	}{
		{"+150", 150, nil},
		{"150", 150, nil},
		{"-110", -110, nil},
		{" -105 ", -105, nil},
		{"0", 0, ErrZeroOdds},
		{"+0", 0, ErrZeroOdds},
		{"", 0, ErrMalformedOdds},
		{"abc", 0, ErrMalformedOdds},
		{"1.5", 0, ErrMalformedOdds},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmerican(tt.input)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAmerican_JSON(t *testing.T) {
	type leg struct {
		Odds American `json:"odds"`
	}

	data, err := json.Marshal(leg{Odds: 150})
	require.NoError(t, err)
	assert.JSONEq(t, `{"odds":"+150"}`, string(data))

	var parsed leg
	require.NoError(t, json.Unmarshal([]byte(`{"odds":"-110"}`), &parsed))
	assert.Equal(t, American(-110), parsed.Odds)

	err = json.Unmarshal([]byte(`{"odds":"0"}`), &parsed)
	assert.ErrorIs(t, err, ErrZeroOdds)
}
