package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"signalbot/internal/config"
	"signalbot/internal/domain"
	"signalbot/internal/repository"
)

// ErrUnsupportedLanguage is returned when a language change names a
// code outside the whitelist
var ErrUnsupportedLanguage = errors.New("unsupported language code")

// LanguageService resolves a user's preferred display language. Results
// are cached for the process lifetime; the cache is re-derivable from
// the user store at any time.
type LanguageService struct {
	users       repository.UserRepository
	languages   config.Languages
	defaultLang string
	logger      *zap.Logger

	cache    map[int64]string
	cacheMux sync.RWMutex
}

// NewLanguageService creates a new language service
func NewLanguageService(
	users repository.UserRepository,
	languages config.Languages,
	defaultLang string,
	logger *zap.Logger,
) *LanguageService {
	return &LanguageService{
		users:       users,
		languages:   languages,
		defaultLang: defaultLang,
		logger:      logger,
		cache:       make(map[int64]string),
	}
}

// Resolve returns the user's display language, creating the user record
// on first contact. The returned flag reports whether this call created
// the user. A new user's language is the platform hint when whitelisted,
// the default otherwise; a stored code outside the whitelist normalizes
// to the default instead of failing the dispatch.
func (s *LanguageService) Resolve(ctx context.Context, profile domain.Profile) (string, bool, error) {
	s.cacheMux.RLock()
	lang, cached := s.cache[profile.TelegramID]
	s.cacheMux.RUnlock()
	if cached {
		return lang, false, nil
	}

	user, err := s.users.FindByTelegramID(ctx, profile.TelegramID)
	if err != nil {
		return "", false, fmt.Errorf("failed to look up user: %w", err)
	}

	created := false
	if user != nil {
		lang = user.Language
		if !s.languages.Supported(lang) {
			s.logger.Warn("Stored language not in whitelist, using default",
				zap.Int64("telegram_id", profile.TelegramID),
				zap.String("stored", lang),
			)
			lang = s.defaultLang
		}
	} else {
		lang = s.defaultLang
		if s.languages.Supported(profile.LanguageHint) {
			lang = profile.LanguageHint
		}

		newUser := &domain.User{
			TelegramID: profile.TelegramID,
			FirstName:  profile.FirstName,
			LastName:   profile.LastName,
			Username:   profile.Username,
			Language:   lang,
		}
		if err := s.users.Create(ctx, newUser); err != nil {
			return "", false, fmt.Errorf("failed to create user: %w", err)
		}
		created = true

		s.logger.Info("Created new user",
			zap.Int64("telegram_id", profile.TelegramID),
			zap.String("language", lang),
		)
	}

	s.cacheMux.Lock()
	s.cache[profile.TelegramID] = lang
	s.cacheMux.Unlock()

	return lang, created, nil
}

// SetLanguage validates and persists a new preferred language. The
// cache is only updated after the store commit so a failed persist is
// never served from memory.
func (s *LanguageService) SetLanguage(ctx context.Context, telegramID int64, code string) error {
	if !s.languages.Supported(code) {
		return ErrUnsupportedLanguage
	}

	if err := s.users.UpdateLanguage(ctx, telegramID, code); err != nil {
		return fmt.Errorf("failed to update language: %w", err)
	}

	s.cacheMux.Lock()
	s.cache[telegramID] = code
	s.cacheMux.Unlock()

	return nil
}

// Invalidate drops a user's cached language so the next resolution
// re-reads the store
func (s *LanguageService) Invalidate(telegramID int64) {
	s.cacheMux.Lock()
	delete(s.cache, telegramID)
	s.cacheMux.Unlock()
}
