package testutil

import (
	"time"

	"go.uber.org/zap"

	"signalbot/internal/config"
	"signalbot/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestLanguages returns a small whitelist for tests
func NewTestLanguages() config.Languages {
	return config.Languages{
		{Code: "en", Name: "English", Emoji: "🇬🇧"},
		{Code: "de", Name: "Deutsch", Emoji: "🇩🇪"},
		{Code: "es", Name: "Español", Emoji: "🇪🇸"},
	}
}

// NewTestUser creates a test user
func NewTestUser(telegramID int64, lang string) *domain.User {
	return &domain.User{
		ID:         telegramID,
		TelegramID: telegramID,
		FirstName:  "Test",
		Username:   "tester",
		Language:   lang,
		CreatedAt:  time.Now(),
	}
}

// NewTestProfile creates a test profile with the given locale hint
func NewTestProfile(telegramID int64, hint string) domain.Profile {
	return domain.Profile{
		TelegramID:   telegramID,
		FirstName:    "Test",
		Username:     "tester",
		LanguageHint: hint,
	}
}
