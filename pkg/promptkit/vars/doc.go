/*
Package vars loads and combines variable contexts for template rendering.

# Overview

vars wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
Contexts are typically assembled from YAML or JSON files (session data,
manifest defaults) and handed to a render call via Raw.

# Basic Usage

Load a context from a file and extract values with defaults:

	v, err := vars.FromFile("session.yaml")
	if err != nil {
	    return err
	}

	model := v.String("model", "default-model")
	verbose := v.Bool("verbose", false)
	out := template.Render(src, v.Raw())

# Layering

Merge layers contexts without modifying the inputs; later maps win:

	ctx := vars.Merge(manifestDefaults, sessionVars, callerVars)

Clone deep-copies a context when a caller needs a private snapshot:

	snapshot := vars.Clone(ctx)

# Type Coercion

Int accepts int, int64, and whole float64 values (YAML integers arrive as
int, JSON numbers as float64). StringSlice accepts []string or a []any
whose elements are all strings. Anything else falls back to the default.
*/
package vars
