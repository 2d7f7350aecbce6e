package handler

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"signalbot/internal/screen"
)

// handleStart handles /start, creating the user on first contact and
// attributing a referral when the deep-link payload names a referrer
func (h *Handler) handleStart(c tele.Context) error {
	profile := profileFrom(c)

	ctx, cancel := h.dispatchContext()
	defer cancel()

	h.logger.Info("User started bot",
		zap.Int64("user_id", profile.TelegramID),
		zap.String("username", profile.Username),
	)

	lang, created, err := h.languages.Resolve(ctx, profile)
	if err != nil {
		h.logger.Error("Failed to resolve language", zap.Error(err))
		return c.Send(msgGenericError)
	}

	if created {
		if referrerID := parseReferralPayload(c.Message(), profile.TelegramID); referrerID != 0 {
			// Attribution is best-effort: a bad referrer id must not
			// break the new user's first screen
			if err := h.referrals.Attribute(ctx, referrerID, profile.TelegramID); err != nil {
				h.logger.Warn("Failed to attribute referral",
					zap.Int64("referrer_id", referrerID),
					zap.Error(err),
				)
			}
		}
	}

	return h.showScreen(ctx, c, screen.MainMenu, lang, nil)
}

// handleLanguageCommand handles /language
func (h *Handler) handleLanguageCommand(c tele.Context) error {
	profile := profileFrom(c)

	ctx, cancel := h.dispatchContext()
	defer cancel()

	lang, _, err := h.languages.Resolve(ctx, profile)
	if err != nil {
		h.logger.Error("Failed to resolve language", zap.Error(err))
		return c.Send(msgGenericError)
	}

	return h.showScreen(ctx, c, screen.LanguageMenu, lang, nil)
}

// parseReferralPayload extracts the referrer id from a /start deep link
// payload. Returns 0 when there is none, it is not numeric, or it names
// the sender themselves.
func parseReferralPayload(msg *tele.Message, selfID int64) int64 {
	if msg == nil {
		return 0
	}
	payload := strings.TrimSpace(msg.Payload)
	if payload == "" {
		return 0
	}
	referrerID, err := strconv.ParseInt(payload, 10, 64)
	if err != nil || referrerID <= 0 || referrerID == selfID {
		return 0
	}
	return referrerID
}
