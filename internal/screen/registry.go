package screen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrUnknownScreen is returned for a target no screen is registered
// under. With a validated registry it indicates a configuration bug.
var ErrUnknownScreen = errors.New("unknown screen")

// Localizer renders text in a target language
type Localizer interface {
	Localize(ctx context.Context, text, lang string) string
}

// Registry is the static catalog of screens plus the routing table from
// button targets to screens. It holds no per-user state; rendering is a
// pure function over the catalog and caller-supplied dynamic values.
type Registry struct {
	screens   map[string]Screen
	routes    map[string]string
	localizer Localizer
	logger    *zap.Logger
}

// NewRegistry builds a registry from screens and extra routes. Routes
// map callback targets to screen ids; every screen id routes to itself,
// extra entries let several targets land on one screen (all three
// signal tiers confirm on the same acknowledgement screen).
func NewRegistry(localizer Localizer, logger *zap.Logger, screens []Screen, routes map[string]string) (*Registry, error) {
	r := &Registry{
		screens:   make(map[string]Screen, len(screens)),
		routes:    make(map[string]string, len(screens)+len(routes)),
		localizer: localizer,
		logger:    logger,
	}

	for _, s := range screens {
		if s.ID == "" {
			return nil, fmt.Errorf("screen with empty id")
		}
		if _, exists := r.screens[s.ID]; exists {
			return nil, fmt.Errorf("duplicate screen id %q", s.ID)
		}
		r.screens[s.ID] = s
		r.routes[s.ID] = s.ID
	}

	for target, screenID := range routes {
		if existing, exists := r.routes[target]; exists && existing != screenID {
			return nil, fmt.Errorf("route %q conflicts with existing route to %q", target, existing)
		}
		r.routes[target] = screenID
	}

	return r, nil
}

// Get returns the screen registered under id
func (r *Registry) Get(id string) (Screen, error) {
	s, ok := r.screens[id]
	if !ok {
		return Screen{}, fmt.Errorf("%w: %q", ErrUnknownScreen, id)
	}
	return s, nil
}

// Resolve follows the routing table from a button target to its screen
func (r *Registry) Resolve(target string) (Screen, error) {
	id, ok := r.routes[target]
	if !ok {
		return Screen{}, fmt.Errorf("%w: no route for target %q", ErrUnknownScreen, target)
	}
	return r.Get(id)
}

// Validate checks transition-table closure: every route lands on a
// registered screen and every button target resolves to a route, a
// terminal action or an external link. Dangling targets are a
// configuration error and must fail startup, not a dispatch.
func (r *Registry) Validate() error {
	for target, screenID := range r.routes {
		if _, ok := r.screens[screenID]; !ok {
			return fmt.Errorf("route %q points at unregistered screen %q", target, screenID)
		}
	}

	for id, s := range r.screens {
		for _, row := range s.Rows {
			for _, b := range row {
				if err := r.validateButton(b); err != nil {
					return fmt.Errorf("screen %q: button %q: %w", id, b.Label, err)
				}
			}
		}
	}
	return nil
}

func (r *Registry) validateButton(b Button) error {
	if b.Label == "" {
		return fmt.Errorf("empty label")
	}
	if b.URL != "" {
		if b.Target != "" {
			return fmt.Errorf("has both target %q and url", b.Target)
		}
		return nil
	}
	if b.Target == "" {
		return fmt.Errorf("has neither target nor url")
	}
	if _, ok := r.routes[b.Target]; ok {
		return nil
	}
	if strings.HasPrefix(b.Target, ActionSetLangPrefix) || strings.HasPrefix(b.Target, ActionAlertPrefix) {
		return nil
	}
	return fmt.Errorf("dangling target %q", b.Target)
}

// Render resolves target to a screen and produces its localized body
// and button rows. Placeholders in the body are substituted from values
// before localization; a placeholder without a value renders literally
// and is logged, so a caller contract violation is visible without
// crashing the dispatch.
func (r *Registry) Render(ctx context.Context, target, lang string, values map[string]string) (string, [][]Button, error) {
	s, err := r.Resolve(target)
	if err != nil {
		return "", nil, err
	}

	body, missing := substitute(s.Body, values)
	if len(missing) > 0 {
		r.logger.Warn("Screen rendered with unfilled placeholders",
			zap.String("screen", s.ID),
			zap.Strings("placeholders", missing),
		)
	}
	body = r.localizer.Localize(ctx, body, lang)

	rows := make([][]Button, len(s.Rows))
	for i, row := range s.Rows {
		rows[i] = make([]Button, len(row))
		for j, b := range row {
			b.Label = r.localizer.Localize(ctx, b.Label, lang)
			rows[i][j] = b
		}
	}

	return body, rows, nil
}

// substitute fills {name} tokens in body from values. Tokens without a
// value are kept literally and reported in the returned slice.
func substitute(body string, values map[string]string) (string, []string) {
	var b strings.Builder
	var missing []string

	for i := 0; i < len(body); {
		open := strings.IndexByte(body[i:], '{')
		if open < 0 {
			b.WriteString(body[i:])
			break
		}
		open += i

		end := strings.IndexByte(body[open:], '}')
		if end < 0 {
			b.WriteString(body[i:])
			break
		}
		end += open

		b.WriteString(body[i:open])

		name := body[open+1 : end]
		if value, ok := values[name]; ok && placeholderName(name) {
			b.WriteString(value)
		} else {
			b.WriteString(body[open : end+1])
			if placeholderName(name) {
				missing = append(missing, name)
			}
		}
		i = end + 1
	}

	return b.String(), missing
}

func placeholderName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
