package template

import "strings"

// Render evaluates the template against vars and returns the expanded
// string. Render never fails and never mutates vars: unresolved paths
// degrade per the configured MissingAction, conditionals with falsy or
// missing values drop their body, and loops over non-sequence values
// render nothing.
//
// vars may be nil, which renders every path as unresolved.
func (t *Template) Render(vars map[string]any) string {
	var b strings.Builder
	renderNodes(&b, t.nodes, newScope(vars), t.missing)
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []node, sc *scope, missing MissingAction) {
	for i := range nodes {
		renderNode(b, &nodes[i], sc, missing)
	}
}

func renderNode(b *strings.Builder, n *node, sc *scope, missing MissingAction) {
	switch n.kind {
	case nodeText:
		b.WriteString(n.text)

	case nodeSubst:
		v, ok := sc.lookup(n.path)
		if !ok && missing == MissingKeep {
			b.WriteString(n.text)
			return
		}
		b.WriteString(formatValue(v))

	case nodeIf:
		v, _ := sc.lookup(n.path)
		if IsTruthy(v) {
			renderNodes(b, n.children, sc, missing)
		}

	case nodeEach:
		v, _ := sc.lookup(n.path)
		seq, ok := sequenceOf(v)
		if !ok {
			return
		}
		for _, elem := range seq {
			renderNodes(b, n.children, sc.push(elem), missing)
		}
	}
}
