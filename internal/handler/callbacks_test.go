package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"

	"signalbot/internal/screen"
	"signalbot/internal/testutil"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "plan_1m",
			expected: "plan_1m",
		},
		{
			name:     "string with whitespace",
			input:    "  plan_1m  ",
			expected: "plan_1m",
		},
		{
			name:     "string with newline",
			input:    "plan\n_1m",
			expected: "plan_1m",
		},
		{
			name:     "string with unprintable characters",
			input:    "plan\x00_1m\x01",
			expected: "plan_1m",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanCallbackData(tt.input))
		})
	}
}

func TestParseReferralPayload(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		selfID   int64
		expected int64
	}{
		{
			name:     "valid referrer",
			payload:  "100",
			selfID:   200,
			expected: 100,
		},
		{
			name:     "empty payload",
			payload:  "",
			selfID:   200,
			expected: 0,
		},
		{
			name:     "non-numeric payload",
			payload:  "promo2024",
			selfID:   200,
			expected: 0,
		},
		{
			name:     "self referral",
			payload:  "200",
			selfID:   200,
			expected: 0,
		},
		{
			name:     "negative id",
			payload:  "-5",
			selfID:   200,
			expected: 0,
		},
		{
			name:     "payload with whitespace",
			payload:  " 100 ",
			selfID:   200,
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &tele.Message{Payload: tt.payload}
			assert.Equal(t, tt.expected, parseReferralPayload(msg, tt.selfID))
		})
	}

	t.Run("nil message", func(t *testing.T) {
		assert.Equal(t, int64(0), parseReferralPayload(nil, 200))
	})
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{1.5, "1.5"},
		{0.00000025, "0.00000025"},
		{42, "42"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatAmount(tt.value))
	}
}

func TestReferralLink(t *testing.T) {
	assert.Equal(t, "https://t.me/signals_bot?start=123", referralLink("signals_bot", 123))
}

func TestPlaceholderBalances(t *testing.T) {
	values := placeholderBalances(map[string]string{"refbalance": "1.5"})

	assert.Equal(t, "1.5", values["refbalance"])
	assert.Equal(t, "0", values["days"])
	assert.Equal(t, "0.000000", values["btc_balance"])
	assert.Equal(t, "0.000000", values["eth_balance"])
	assert.Equal(t, "0.000000", values["usdt_balance"])
}

func TestMarkupFor(t *testing.T) {
	rows := [][]screen.Button{
		{{Label: "All Signals", Target: "signals"}},
		{{Label: "🇬🇧 English", Target: "set_lang_en"}, {Label: "🇩🇪 Deutsch", Target: "set_lang_de"}},
		{{Label: "Support", URL: "https://t.me/support"}},
	}

	markup := markupFor(rows)

	require.Len(t, markup.InlineKeyboard, 3)
	require.Len(t, markup.InlineKeyboard[1], 2)

	assert.Equal(t, "All Signals", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "signals", markup.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "set_lang_de", markup.InlineKeyboard[1][1].Unique)
	assert.Equal(t, "https://t.me/support", markup.InlineKeyboard[2][0].URL)
	assert.Empty(t, markup.InlineKeyboard[2][0].Unique)
}

// passthroughLocalizer returns text unchanged
type passthroughLocalizer struct{}

func (passthroughLocalizer) Localize(_ context.Context, text, _ string) string { return text }

func TestShowWithdraw_FillsBalancePlaceholders(t *testing.T) {
	registry, err := screen.NewRegistry(passthroughLocalizer{}, testutil.NewTestLogger(),
		screen.DefaultScreens(testutil.NewTestLanguages(), "https://t.me/support"),
		screen.DefaultRoutes(),
	)
	require.NoError(t, err)

	// The withdraw screen has no real figures behind it; the dispatcher
	// must still fill every placeholder so the user never sees a token
	body, _, err := registry.Render(context.Background(), screen.Withdraw, "en",
		placeholderBalances(map[string]string{}))

	require.NoError(t, err)
	assert.NotContains(t, body, "{")
	assert.Contains(t, body, "Bitcoin 💵 0.000000 BTC")
	assert.Contains(t, body, "Ethereum 💵 0.000000 ETH")
	assert.Contains(t, body, "Usdt | TRC 20 💵 0.000000 USDT")
}

func TestWithdrawAlertsCoverCatalog(t *testing.T) {
	// Every alert target the withdraw screen exposes has an alert text
	screens := screen.DefaultScreens(testutil.NewTestLanguages(), "https://t.me/support")

	var withdraw *screen.Screen
	for i := range screens {
		if screens[i].ID == screen.Withdraw {
			withdraw = &screens[i]
		}
	}
	require.NotNil(t, withdraw)

	found := 0
	for _, row := range withdraw.Rows {
		for _, b := range row {
			if _, ok := withdrawAlerts[b.Target]; ok {
				found++
			}
		}
	}
	assert.Equal(t, len(withdrawAlerts), found)
}
