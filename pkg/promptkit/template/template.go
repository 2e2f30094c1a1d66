package template

// Template is a parsed prompt template, ready to render against any
// variable context. A Template is immutable and safe for concurrent use.
type Template struct {
	nodes   []node
	missing MissingAction
}

// Parse scans src into a Template. Parsing never fails: malformed or
// unterminated markers are kept as literal text, so any input produces a
// renderable Template.
func Parse(src string, opts ...Option) *Template {
	t := &Template{nodes: parse(src)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NodeCount returns the total number of nodes in the parsed tree.
// A marker-free template parses to at most one text node.
func (t *Template) NodeCount() int {
	return countNodes(t.nodes)
}

// Render parses src and renders it against vars in one call.
//
// For templates rendered repeatedly, Parse once and call Template.Render
// to avoid re-scanning the source each time.
func Render(src string, vars map[string]any) string {
	return Parse(src).Render(vars)
}
