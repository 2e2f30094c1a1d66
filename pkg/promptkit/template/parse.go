package template

import (
	"regexp"
	"strings"
)

// pathPattern matches a dot path: identifier segments (letters, digits,
// underscore) separated by single dots.
var pathPattern = regexp.MustCompile(`^\w+(?:\.\w+)*$`)

const (
	markerOpen  = "{{"
	markerClose = "}}"
)

// frame accumulates the body of one open block during parsing.
// The bottom frame has no kind and collects the top-level nodes.
type frame struct {
	kind  nodeKind
	path  string
	raw   string // opener marker text, emitted verbatim if the block never closes
	nodes []node
}

// parse scans src into a node tree. It never fails: markers that are not
// valid substitutions, openers, or closers stay in the output as literal
// text, as do block openers that are never closed and closers that match
// no open block.
func parse(src string) []node {
	var stack []frame
	cur := frame{}

	text := func(s string) {
		if s == "" {
			return
		}
		// Merge with a preceding text node so unwinding stays simple.
		if n := len(cur.nodes); n > 0 && cur.nodes[n-1].kind == nodeText {
			cur.nodes[n-1].text += s
			return
		}
		cur.nodes = append(cur.nodes, node{kind: nodeText, text: s})
	}

	i := 0
	for i < len(src) {
		open := strings.Index(src[i:], markerOpen)
		if open < 0 {
			text(src[i:])
			break
		}
		open += i
		text(src[i:open])

		rel := strings.Index(src[open+len(markerOpen):], markerClose)
		if rel < 0 {
			text(src[open:])
			break
		}
		end := open + len(markerOpen) + rel + len(markerClose)
		marker := src[open:end]
		inner := strings.TrimSpace(src[open+len(markerOpen) : end-len(markerClose)])
		i = end

		switch {
		case inner == "/if", inner == "/each":
			want := nodeIf
			if inner == "/each" {
				want = nodeEach
			}
			if len(stack) == 0 || cur.kind != want {
				text(marker)
				continue
			}
			parent := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent.nodes = append(parent.nodes, node{
				kind:     cur.kind,
				path:     cur.path,
				children: cur.nodes,
			})
			cur = parent

		case strings.HasPrefix(inner, "#"):
			kind, path, ok := openerPath(inner)
			if !ok {
				text(marker)
				continue
			}
			stack = append(stack, cur)
			cur = frame{kind: kind, path: path, raw: marker}

		case pathPattern.MatchString(inner):
			cur.nodes = append(cur.nodes, node{kind: nodeSubst, path: inner, text: marker})

		default:
			text(marker)
		}
	}

	// Unclosed blocks degrade to literal text: the opener marker is kept
	// verbatim and the nodes parsed inside it become its siblings.
	for len(stack) > 0 {
		inner := cur
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		text(inner.raw)
		for _, n := range inner.nodes {
			if n.kind == nodeText {
				text(n.text)
				continue
			}
			cur.nodes = append(cur.nodes, n)
		}
	}

	return cur.nodes
}

// openerPath parses a block opener like "#if user.name" or "#each items".
// Returns ok=false when the keyword is unknown, the path is absent or
// malformed, or extra tokens follow it.
func openerPath(inner string) (nodeKind, string, bool) {
	fields := strings.Fields(inner)
	if len(fields) != 2 || !pathPattern.MatchString(fields[1]) {
		return 0, "", false
	}
	switch fields[0] {
	case "#if":
		return nodeIf, fields[1], true
	case "#each":
		return nodeEach, fields[1], true
	default:
		return 0, "", false
	}
}
