package template

// nodeKind identifies the role of a parsed template node.
type nodeKind int

const (
	// nodeText is literal template text, emitted verbatim.
	nodeText nodeKind = iota

	// nodeSubst is a substitution marker: {{path}}.
	nodeSubst

	// nodeIf is a conditional block: {{#if path}} body {{/if}}.
	nodeIf

	// nodeEach is a loop block: {{#each path}} body {{/each}}.
	nodeEach
)

// node is one element of a parsed template tree.
//
// Text nodes carry their literal content in text. Substitution nodes carry
// the trimmed dot path in path and the original marker text in text so that
// MissingKeep can reproduce it exactly. Block nodes carry the trimmed dot
// path in path and their body as children.
type node struct {
	kind     nodeKind
	text     string
	path     string
	children []node
}

// countNodes returns the total number of nodes in the tree rooted at nodes.
func countNodes(nodes []node) int {
	n := len(nodes)
	for i := range nodes {
		n += countNodes(nodes[i].children)
	}
	return n
}
