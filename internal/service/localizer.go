package service

import (
	"context"

	"go.uber.org/zap"

	"signalbot/internal/translate"
)

// Localizer renders user-facing text in a user's language. Translation
// is best-effort: any provider failure falls back to the original text
// so a broken translator never blocks a screen.
type Localizer struct {
	translator  translate.Translator
	defaultLang string
	logger      *zap.Logger
}

// NewLocalizer creates a new localizer
func NewLocalizer(translator translate.Translator, defaultLang string, logger *zap.Logger) *Localizer {
	return &Localizer{
		translator:  translator,
		defaultLang: defaultLang,
		logger:      logger,
	}
}

// Localize translates text into lang. Text already in the default
// language (and empty text) is returned unchanged without calling the
// provider.
func (l *Localizer) Localize(ctx context.Context, text, lang string) string {
	if lang == l.defaultLang || text == "" {
		return text
	}

	translated, err := l.translator.Translate(ctx, text, lang)
	if err != nil {
		l.logger.Warn("Translation failed, using original text",
			zap.String("lang", lang),
			zap.Error(err),
		)
		return text
	}

	return translated
}
