package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Translator converts text into a target language
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// requestTimeout bounds a single provider call so a slow translation
// can never hang a dispatch
const requestTimeout = 5 * time.Second

// GoogleTranslator calls the public Google translate endpoint with
// automatic source-language detection
type GoogleTranslator struct {
	endpoint string
	client   *http.Client
}

// NewGoogleTranslator creates a translator against the public endpoint
func NewGoogleTranslator() *GoogleTranslator {
	return &GoogleTranslator{
		endpoint: "https://translate.googleapis.com/translate_a/single",
		client:   &http.Client{Timeout: requestTimeout},
	}
}

// Translate translates text into the target language
func (g *GoogleTranslator) Translate(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", "auto")
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate request returned status %d", resp.StatusCode)
	}

	// The endpoint responds with nested arrays, the first element
	// holding one [translated, original, ...] entry per text segment
	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translate response shape")
	}

	var b strings.Builder
	for _, s := range segments {
		segment, ok := s.([]any)
		if !ok || len(segment) == 0 {
			continue
		}
		if part, ok := segment[0].(string); ok {
			b.WriteString(part)
		}
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("translate response contained no text")
	}

	return b.String(), nil
}
