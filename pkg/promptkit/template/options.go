package template

// MissingAction specifies how substitution markers whose path cannot be
// resolved are handled during rendering.
//
// Conditional and loop blocks are not affected: an unresolved conditional
// path is falsy and an unresolved loop path renders nothing, regardless of
// the configured action.
type MissingAction int

const (
	// MissingEmpty replaces unresolved substitution markers with the empty
	// string. This is the default behavior.
	MissingEmpty MissingAction = iota

	// MissingKeep leaves unresolved substitution markers in place, marker
	// text intact. Useful for staged expansion where a later render pass
	// supplies the remaining variables.
	//
	// A path that resolves to an explicit nil still renders as the empty
	// string; only paths absent from the context are kept.
	MissingKeep
)

// Option configures a Template at parse time.
type Option func(*Template)

// WithMissingAction sets how unresolved substitution markers are handled.
//
// Default: MissingEmpty (replace with empty string)
//
// Example:
//
//	tpl := template.Parse("Hello {{name}}, model is {{model}}",
//	    template.WithMissingAction(template.MissingKeep))
//	result := tpl.Render(map[string]any{"name": "reviewer"})
//	// result: "Hello reviewer, model is {{model}}"
func WithMissingAction(action MissingAction) Option {
	return func(t *Template) {
		t.missing = action
	}
}
