package output

// T exposes a minimal i18n contract for user-facing messages:
// message lookup plus templating for a given locale.
type T interface {
	// T renders the message identified by key for the given locale.
	// data holds optional template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
