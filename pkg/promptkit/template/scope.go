package template

import (
	"maps"
	"strings"
)

// itemKey is the variable name each loop element is bound to in its scope.
const itemKey = "item"

// scope is an immutable chain of variable bindings. Lookup tries the local
// bindings first and falls back to the parent chain, so inner bindings
// shadow outer ones. Deriving a child scope never copies the parent.
type scope struct {
	parent *scope
	locals map[string]any
}

// newScope returns the root scope over the caller's variables.
// The map is read, never written.
func newScope(vars map[string]any) *scope {
	return &scope{locals: vars}
}

// push derives a child scope for one loop element.
//
// Mapping elements contribute their fields as local bindings, shadowing
// same-named outer keys. Every element, mapping or scalar, is additionally
// bound to the literal key "item"; that binding wins over an element field
// of the same name.
func (s *scope) push(elem any) *scope {
	var locals map[string]any
	if fields, ok := fieldsOf(elem); ok {
		locals = make(map[string]any, len(fields)+1)
		maps.Copy(locals, fields)
	} else {
		locals = make(map[string]any, 1)
	}
	locals[itemKey] = elem
	return &scope{parent: s, locals: locals}
}

// lookup resolves a dot path against the scope chain.
//
// The first segment selects the innermost scope that binds it; remaining
// segments walk nested mappings from there. Returns ok=false when the head
// is unbound or any later hop is missing, distinct from a bound nil.
func (s *scope) lookup(path string) (any, bool) {
	head, rest, _ := strings.Cut(path, ".")
	for sc := s; sc != nil; sc = sc.parent {
		v, ok := sc.locals[head]
		if !ok {
			continue
		}
		if rest == "" {
			return v, true
		}
		return walkPath(v, strings.Split(rest, "."))
	}
	return nil, false
}
