package screen

// Terminal action prefixes. Button targets carrying one of these do not
// display a screen; the dispatcher handles them directly.
const (
	// ActionSetLangPrefix marks a language-change target, e.g. "set_lang_de"
	ActionSetLangPrefix = "set_lang_"
	// ActionAlertPrefix marks a transient-alert target, e.g. "alert_btc"
	ActionAlertPrefix = "alert_"
)

// Button is one inline keyboard entry. A button either navigates to the
// Target (a screen id or terminal action) or opens URL; exactly one of
// the two must be set. Targets and URLs are never translated.
type Button struct {
	Label  string
	Target string
	URL    string
}

// Screen is a named, localizable unit of displayed content plus its
// button layout. The body may contain named {placeholder} tokens filled
// at render time. Screens are immutable once registered.
type Screen struct {
	ID   string
	Body string
	Rows [][]Button
}
