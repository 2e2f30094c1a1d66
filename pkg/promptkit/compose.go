package promptkit

import (
	"context"
	"errors"
	"strings"

	"github.com/randalmurphal/promptkit/pkg/promptkit/manifest"
	"github.com/randalmurphal/promptkit/pkg/promptkit/observability"
	"github.com/randalmurphal/promptkit/pkg/promptkit/store"
	"github.com/randalmurphal/promptkit/pkg/promptkit/template"
	"github.com/randalmurphal/promptkit/pkg/promptkit/vars"
)

// Compose assembles a full prompt from a manifest: each template named in
// CompositionOrder is fetched from the store and rendered against the
// manifest's variables merged under callerVars (caller wins), and the
// rendered fragments are joined with newlines.
//
// Entries in CompositionOrder may themselves contain {{var}} markers,
// resolved against the merged variables before lookup, so a manifest can
// select fragments by mode ("modes/{{mode}}").
//
// Fragments missing from the store are skipped with a log entry, matching
// the core renderer's degradation policy. Other store failures propagate.
func (r *Renderer) Compose(ctx context.Context, m *manifest.Manifest, callerVars map[string]any) (string, error) {
	if r.store == nil {
		return "", ErrNoStore
	}
	if m == nil {
		return "", ErrNilManifest
	}
	if err := m.Validate(); err != nil {
		return "", err
	}

	merged := vars.Merge(m.Variables, callerVars)

	ctx, span := r.spans.StartComposeSpan(ctx, m.Version)
	var composeErr error
	defer func() { r.spans.EndSpanWithError(span, composeErr) }()

	fragments := make([]string, 0, len(m.CompositionOrder))
	for _, entry := range m.CompositionOrder {
		name := template.Render(entry, merged)

		out, err := r.RenderNamed(ctx, name, merged)
		if errors.Is(err, store.ErrNotFound) {
			observability.LogFragmentSkipped(r.logger, name, err)
			continue
		}
		if err != nil {
			composeErr = err
			return "", err
		}
		observability.LogFragmentLoad(r.logger, name, len(out))
		fragments = append(fragments, out)
	}

	return strings.Join(fragments, "\n"), nil
}

// ComposeFile loads and validates a manifest from a YAML file, then
// composes it. Load and validation failures are wrapped in ManifestError.
func (r *Renderer) ComposeFile(ctx context.Context, path string, callerVars map[string]any) (string, error) {
	m, err := manifest.FromFile(path)
	if err != nil {
		return "", &ManifestError{Path: path, Err: err}
	}
	if err := m.Validate(); err != nil {
		return "", &ManifestError{Path: path, Err: err}
	}
	return r.Compose(ctx, m, callerVars)
}
