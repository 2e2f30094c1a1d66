/*
Package promptkit renders prompt templates for LLM agents.

# Overview

promptkit expands template text containing {{path}} substitutions,
{{#if path}} conditional blocks, and {{#each path}} loop blocks against a
variable context. Rendering is best-effort by design: missing variables,
wrong-typed collections, and malformed markers degrade to empty or literal
output rather than erroring, because prompt templates are hand-authored
text where a hard failure on an optional field is worse than an omission.

Around the core renderer the library provides named template storage,
manifest-driven composition, render caching, and OpenTelemetry
observability.

# Basic Usage

Render a template string directly:

	out := promptkit.Render("Hello {{name}}!", map[string]any{"name": "reviewer"})
	// out: "Hello reviewer!"

Or build a Renderer over a store for named templates:

	st := store.NewMemoryStore()
	st.Put(ctx, "greeting", "Hello {{name}}!")

	r := promptkit.New(
	    promptkit.WithStore(st),
	    promptkit.WithCache(cache.New()),
	)
	out, err := r.RenderNamed(ctx, "greeting", map[string]any{"name": "reviewer"})

# Subpackages

  - template: the core parse/render engine and its scoping rules
  - vars: variable-context loading (YAML/JSON), merging, typed accessors
  - store: named template sources (memory, SQLite, directory, fs.FS, layered)
  - manifest: versioned prompt-composition manifests
  - cache: memoized renders keyed by template version and variables
  - observability: slog helpers, OTel metrics and tracing
*/
package promptkit
