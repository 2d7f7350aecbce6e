package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the language content is authored in. Users fall
// back to it whenever their preference cannot be honored.
const DefaultLanguage = "en"

// Language describes one supported display language
type Language struct {
	Code  string `yaml:"code"`
	Name  string `yaml:"name"`
	Emoji string `yaml:"emoji"`
}

// Languages is the ordered whitelist of supported display languages
type Languages []Language

// Supported reports whether code is in the whitelist
func (ls Languages) Supported(code string) bool {
	for _, l := range ls {
		if l.Code == code {
			return true
		}
	}
	return false
}

// DefaultLanguages returns the built-in language whitelist
func DefaultLanguages() Languages {
	return Languages{
		{Code: "en", Name: "English", Emoji: "🇬🇧"},
		{Code: "es", Name: "Español", Emoji: "🇪🇸"},
		{Code: "de", Name: "Deutsch", Emoji: "🇩🇪"},
		{Code: "fr", Name: "Français", Emoji: "🇫🇷"},
		{Code: "it", Name: "Italiano", Emoji: "🇮🇹"},
		{Code: "pt", Name: "Português", Emoji: "🇵🇹"},
		{Code: "ru", Name: "Русский", Emoji: "🇷🇺"},
		{Code: "hi", Name: "हिन्दी", Emoji: "🇮🇳"},
		{Code: "zh-cn", Name: "中文 (简体)", Emoji: "🇨🇳"},
		{Code: "ar", Name: "العربية", Emoji: "🇸🇦"},
	}
}

// LoadLanguages reads the language whitelist from a YAML file. An empty
// path returns the built-in defaults. The loaded list must be non-empty
// and must contain the default language.
func LoadLanguages(path string) (Languages, error) {
	if path == "" {
		return DefaultLanguages(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read languages file: %w", err)
	}

	var langs Languages
	if err := yaml.Unmarshal(data, &langs); err != nil {
		return nil, fmt.Errorf("failed to parse languages file: %w", err)
	}

	if len(langs) == 0 {
		return nil, fmt.Errorf("languages file %s defines no languages", path)
	}
	for _, l := range langs {
		if l.Code == "" {
			return nil, fmt.Errorf("languages file %s contains an entry without a code", path)
		}
	}
	if !langs.Supported(DefaultLanguage) {
		return nil, fmt.Errorf("languages file %s must include the default language %q", path, DefaultLanguage)
	}

	return langs, nil
}
