package encode

type EncodeOption func(*EncState)

// WithIndent selects a multi-line rendering with n spaces per nesting level.
// The default (n = 0) is the minimal single-line form.
func WithIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colorizes output for terminal display. A nil Colors is a
// no-op, so AutoColors can be passed through unconditionally.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
