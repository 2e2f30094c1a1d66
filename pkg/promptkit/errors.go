package promptkit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/randalmurphal/promptkit/pkg/promptkit/store"
)

// Sentinel errors for renderer configuration.
var (
	// ErrNoStore indicates a named-template operation on a Renderer built
	// without WithStore.
	ErrNoStore = errors.New("no template store configured")

	// ErrNilManifest indicates Compose was called with a nil manifest.
	ErrNilManifest = errors.New("manifest cannot be nil")
)

// TemplateError wraps store errors from named-template operations.
type TemplateError struct {
	// Name is the template the operation targeted.
	Name string
	// Op is the operation that failed ("stat", "get", "list").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// ManifestError wraps errors from loading or validating a manifest file.
type ManifestError struct {
	// Path is the manifest file that failed.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ManifestError) Unwrap() error {
	return e.Err
}

// UnknownTemplateError indicates a named template doesn't exist in the
// store. Suggestions holds near-miss names from a fuzzy match against the
// store's contents, best first, and may be empty.
type UnknownTemplateError struct {
	// Name is the template that was requested.
	Name string
	// Suggestions are similarly named templates that do exist.
	Suggestions []string
}

// Error implements the error interface.
func (e *UnknownTemplateError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown template %q", e.Name)
	}
	return fmt.Sprintf("unknown template %q (did you mean %s?)",
		e.Name, strings.Join(e.Suggestions, ", "))
}

// Unwrap returns store.ErrNotFound so callers can test with errors.Is
// without caring about the concrete type.
func (e *UnknownTemplateError) Unwrap() error {
	return store.ErrNotFound
}
