package promptkit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/promptkit/pkg/promptkit"
	"github.com/randalmurphal/promptkit/pkg/promptkit/store"
)

// TestTemplateError tests message formatting and unwrapping.
func TestTemplateError(t *testing.T) {
	inner := errors.New("disk on fire")
	err := &promptkit.TemplateError{Name: "greeting", Op: "stat", Err: inner}

	assert.Equal(t, "template stat greeting: disk on fire", err.Error())
	assert.ErrorIs(t, err, inner)
}

// TestManifestError tests message formatting and unwrapping.
func TestManifestError(t *testing.T) {
	inner := errors.New("yaml: bad indent")
	err := &promptkit.ManifestError{Path: "prompts/manifest.yaml", Err: inner}

	assert.Equal(t, "manifest prompts/manifest.yaml: yaml: bad indent", err.Error())
	assert.ErrorIs(t, err, inner)
}

// TestUnknownTemplateError tests suggestion formatting and that the error
// reads as a not-found to errors.Is.
func TestUnknownTemplateError(t *testing.T) {
	err := &promptkit.UnknownTemplateError{Name: "greetng"}
	assert.Equal(t, `unknown template "greetng"`, err.Error())
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = &promptkit.UnknownTemplateError{
		Name:        "greetng",
		Suggestions: []string{"greeting", "greeting-formal"},
	}
	assert.Equal(t, `unknown template "greetng" (did you mean greeting, greeting-formal?)`, err.Error())
}
