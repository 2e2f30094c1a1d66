/*
Package template renders prompt templates containing substitution markers,
conditional blocks, and loop blocks.

# Overview

template expands {{path}} markers in strings using a variable context,
with {{#if path}}...{{/if}} blocks for conditional sections and
{{#each path}}...{{/each}} blocks for iteration. It's designed for prompt
text assembled from hand-authored fragments, where a missing optional
field should silently render as nothing rather than fail the render.

Rendering is two-phase: Parse scans the source once into a node tree,
and Render walks that tree against a context. Parse a template once and
render it against any number of contexts.

# Basic Usage

Render a template using the package-level function:

	result := template.Render("Hello {{name}}", map[string]any{"name": "World"})
	// result: "Hello World"

Or parse once and render repeatedly:

	tpl := template.Parse("Hello {{user.name}}")
	result := tpl.Render(map[string]any{
	    "user": map[string]any{"name": "World"},
	})
	// result: "Hello World"

# Markers

Three marker kinds are supported:

  - {{path}} - substitution, replaced with the resolved value's string form
  - {{#if path}} body {{/if}} - body rendered only when the value is truthy
  - {{#each path}} body {{/each}} - body rendered once per sequence element

Blocks nest arbitrarily. Whitespace around the path inside a marker is
ignored, so {{#if  ready }} and {{#if ready}} are equivalent.

# Paths and Scoping

A path is one or more identifier segments (letters, digits, underscore)
joined by dots. Resolution walks nested mappings segment by segment;
a missing key or a non-mapping hop resolves to nothing. Indexing, filters,
and expressions are not supported.

Inside an {{#each}} body, each element gets its own scope: the fields of a
mapping element are available directly and shadow same-named outer keys,
and the literal key "item" is always bound to the element itself:

	src := "{{#each users}}{{name}} ({{item.role}}) {{/each}}"
	result := template.Render(src, map[string]any{
	    "users": []any{
	        map[string]any{"name": "ada", "role": "admin"},
	        map[string]any{"name": "bob", "role": "viewer"},
	    },
	})
	// result: "ada (admin) bob (viewer) "

For scalar elements, {{item}} is the element's string form:

	result := template.Render("{{#each n}}{{item}}{{/each}}",
	    map[string]any{"n": []any{1, 2, 3}})
	// result: "123"

# Truthiness

{{#if}} uses a single documented policy, exposed as IsTruthy: nil,
unresolved paths, false, the empty string, and numeric zero are falsy;
everything else is truthy, including empty sequences and empty mappings.

# Missing Values

Render never fails. Unresolved and nil substitution paths render as the
empty string by default:

	result := template.Render("Hello {{missing}}!", nil)
	// result: "Hello !"

A loop over a missing or non-sequence value renders nothing:

	result := template.Render("{{#each items}}x{{/each}}",
	    map[string]any{"items": "not-a-list"})
	// result: ""

Configure substitution fallback with options:

	tpl := template.Parse("Hello {{missing}}",
	    template.WithMissingAction(template.MissingKeep))
	result := tpl.Render(nil)
	// result: "Hello {{missing}}"

# Malformed Input

The parser is deliberately not a grammar enforcer. Markers whose contents
are not a valid path or block keyword, block openers that are never closed,
and closers that match no open block all stay in the output as literal text.
Bodies parsed inside an unclosed block are still rendered, as siblings of
the kept opener text.

# Thread Safety

A parsed Template is immutable and safe for concurrent Render calls.
Render allocates fresh derived scopes per call and never mutates the
caller's context.
*/
package template
