package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"signalbot/internal/screen"
	"signalbot/internal/service"
)

// withdrawAlerts maps withdrawal targets to their alert texts. Balances
// are not funded yet, so every withdrawal attempt alerts.
var withdrawAlerts = map[string]string{
	"alert_btc":  "Not Enough BTC on balance to Withdraw",
	"alert_eth":  "Not Enough ETH on balance to Withdraw",
	"alert_usdt": "Not Enough USDT(TRC20) on balance to Withdraw",
}

// placeholderBalances fills the balance figures the ledger does not
// track yet; only the referral bonus sum is real
func placeholderBalances(values map[string]string) map[string]string {
	values["days"] = "0"
	values["btc_balance"] = "0.000000"
	values["eth_balance"] = "0.000000"
	values["usdt_balance"] = "0.000000"
	return values
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Buttons built by this bot carry the target in Unique; clean Data
	// covers clients that deliver it unparsed
	target := callback.Unique
	if target == "" {
		target = cleanCallbackData(callback.Data)
	}

	profile := profileFrom(c)

	h.logger.Info("Processing callback",
		zap.String("target", target),
		zap.Int64("user_id", profile.TelegramID),
	)

	ctx, cancel := h.dispatchContext()
	defer cancel()

	lang, _, err := h.languages.Resolve(ctx, profile)
	if err != nil {
		h.logger.Error("Failed to resolve language", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	switch {
	case strings.HasPrefix(target, screen.ActionSetLangPrefix):
		return h.handleSetLanguage(ctx, c, target)
	case strings.HasPrefix(target, screen.ActionAlertPrefix):
		return h.handleWithdrawAlert(ctx, c, target, lang)
	}

	switch target {
	case screen.Balance:
		return h.showBalance(ctx, c, lang)
	case screen.Referrals:
		return h.showReferrals(ctx, c, lang)
	case screen.ReferralLink:
		return h.showReferralLink(ctx, c, lang)
	case screen.Withdraw:
		return h.showWithdraw(ctx, c, lang)
	}

	return h.showScreen(ctx, c, target, lang, nil)
}

// handleSetLanguage validates and persists a language change, then
// redraws the main menu in the new language
func (h *Handler) handleSetLanguage(ctx context.Context, c tele.Context, target string) error {
	userID := c.Sender().ID
	code := strings.TrimPrefix(target, screen.ActionSetLangPrefix)

	if err := h.languages.SetLanguage(ctx, userID, code); err != nil {
		if errors.Is(err, service.ErrUnsupportedLanguage) {
			h.logger.Warn("Rejected unsupported language code",
				zap.Int64("user_id", userID),
				zap.String("code", code),
			)
			return c.Respond(&tele.CallbackResponse{
				Text:      "That language is not supported.",
				ShowAlert: true,
			})
		}
		h.logger.Error("Failed to set language", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	if err := c.Respond(&tele.CallbackResponse{
		Text: h.localizer.Localize(ctx, "Language updated!", code),
	}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	body, rows, err := h.screens.Render(ctx, screen.MainMenu, code, nil)
	if err != nil {
		h.logger.Error("Failed to render screen", zap.Error(err))
		return c.Send(msgGenericError)
	}
	markup := markupFor(rows)
	if err := c.Edit(body, markup); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(body, markup)
	}
	return nil
}

// handleWithdrawAlert shows the transient insufficient-balance alert
func (h *Handler) handleWithdrawAlert(ctx context.Context, c tele.Context, target, lang string) error {
	text, ok := withdrawAlerts[target]
	if !ok {
		h.logger.Warn("Unknown withdraw alert target", zap.String("target", target))
		return c.Respond()
	}
	return c.Respond(&tele.CallbackResponse{
		Text:      h.localizer.Localize(ctx, text, lang),
		ShowAlert: true,
	})
}

// showBalance renders the balance screen with the referral bonus sum
func (h *Handler) showBalance(ctx context.Context, c tele.Context, lang string) error {
	userID := c.Sender().ID

	balance, err := h.referrals.Balance(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load referral balance", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	values := placeholderBalances(map[string]string{
		"refbalance": formatAmount(balance),
	})
	return h.showScreen(ctx, c, screen.Balance, lang, values)
}

// showWithdraw renders the withdrawal screen. Its per-coin figures are
// the same untracked placeholders the balance screen shows.
func (h *Handler) showWithdraw(ctx context.Context, c tele.Context, lang string) error {
	return h.showScreen(ctx, c, screen.Withdraw, lang, placeholderBalances(map[string]string{}))
}

// showReferrals renders the referral stats screen
func (h *Handler) showReferrals(ctx context.Context, c tele.Context, lang string) error {
	userID := c.Sender().ID

	stats, err := h.referrals.Stats(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load referral stats", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	values := map[string]string{
		"refbalance":   formatAmount(stats.Balance),
		"all_users":    strconv.Itoa(stats.Total),
		"active_users": strconv.Itoa(stats.Active),
	}
	return h.showScreen(ctx, c, screen.Referrals, lang, values)
}

// showReferralLink renders the referral link screen. The link itself is
// appended after localization so it is never translated.
func (h *Handler) showReferralLink(ctx context.Context, c tele.Context, lang string) error {
	userID := c.Sender().ID

	body, rows, err := h.screens.Render(ctx, screen.ReferralLink, lang, nil)
	if err != nil {
		h.logger.Error("Failed to render screen", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	body += "\n" + referralLink(h.botUsername, userID)
	return h.display(c, body, markupFor(rows))
}

// showScreen renders the target screen and displays it: edits in place
// when triggered by a button, sends a new message for a command
func (h *Handler) showScreen(ctx context.Context, c tele.Context, target, lang string, values map[string]string) error {
	body, rows, err := h.screens.Render(ctx, target, lang, values)
	if err != nil {
		if errors.Is(err, screen.ErrUnknownScreen) {
			// Must not happen with a validated catalog; apologize
			// instead of killing the dispatch loop
			h.logger.Error("Unknown screen target", zap.String("target", target))
			return h.display(c, h.localizer.Localize(ctx, "Sorry, this menu is unavailable. Please try /start again.", lang), nil)
		}
		h.logger.Error("Failed to render screen", zap.Error(err))
		return c.Send(msgGenericError)
	}

	return h.display(c, body, markupFor(rows))
}

// display edits the originating message for button presses and sends a
// new message for commands
func (h *Handler) display(c tele.Context, body string, markup *tele.ReplyMarkup) error {
	opts := []interface{}{}
	if markup != nil {
		opts = append(opts, markup)
	}

	if c.Callback() != nil {
		userID := c.Sender().ID
		if err := c.Edit(body, opts...); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(body, opts...)
		}
		return c.Respond()
	}
	return c.Send(body, opts...)
}

// formatAmount renders a bonus amount without trailing zeros
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// referralLink builds the deep link that attributes signups to userID
func referralLink(botUsername string, userID int64) string {
	return "https://t.me/" + botUsername + "?start=" + strconv.FormatInt(userID, 10)
}
