package handler

import (
	"context"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"signalbot/internal/domain"
	"signalbot/internal/screen"
	"signalbot/internal/service"
)

// dispatchTimeout bounds one inbound event: at most one store round
// trip plus one translation call, never a hung dispatch
const dispatchTimeout = 10 * time.Second

const msgGenericError = "Something went wrong. Please try again later."

// Handler manages all bot interactions. The bot is stateless per turn:
// every callback carries the target that selects the next screen, so no
// per-user navigation history is kept server-side.
type Handler struct {
	bot         *tele.Bot
	languages   *service.LanguageService
	referrals   *service.ReferralService
	localizer   *service.Localizer
	screens     *screen.Registry
	logger      *zap.Logger
	botUsername string
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	languages *service.LanguageService,
	referrals *service.ReferralService,
	localizer *service.Localizer,
	screens *screen.Registry,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:       bot,
		languages: languages,
		referrals: referrals,
		localizer: localizer,
		screens:   screens,
		logger:    logger,
	}
	if bot != nil && bot.Me != nil {
		h.botUsername = bot.Me.Username
	}
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/language", h.handleLanguageCommand)

	// All inline buttons route through one callback dispatcher
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

func (h *Handler) dispatchContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dispatchTimeout)
}

// profileFrom extracts the sender's identity and locale hint
func profileFrom(c tele.Context) domain.Profile {
	sender := c.Sender()
	if sender == nil {
		return domain.Profile{}
	}
	return domain.Profile{
		TelegramID:   sender.ID,
		FirstName:    sender.FirstName,
		LastName:     sender.LastName,
		Username:     sender.Username,
		LanguageHint: sender.LanguageCode,
	}
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// markupFor converts screen button rows into an inline keyboard
func markupFor(rows [][]screen.Button) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	teleRows := make([]tele.Row, 0, len(rows))
	for _, row := range rows {
		btns := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			if b.URL != "" {
				btns = append(btns, markup.URL(b.Label, b.URL))
				continue
			}
			btns = append(btns, markup.Data(b.Label, b.Target))
		}
		teleRows = append(teleRows, markup.Row(btns...))
	}
	markup.Inline(teleRows...)
	return markup
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it was already edited by another callback
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}
