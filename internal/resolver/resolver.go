// Package resolver turns track references into normalized track
// metadata via the device network's database.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/deckwatch/deckwatch/internal/domain"
	"go.uber.org/zap"
)

const (
	noLabelMarker = "[no label]"
	noLabelName   = "no label"
	unknownLabel  = "unknown label"
)

// Resolver fetches and normalizes track metadata.
type Resolver struct {
	logger *zap.Logger
	store  domain.MetadataStore
}

// New creates a resolver over the device metadata store.
func New(logger *zap.Logger, store domain.MetadataStore) *Resolver {
	return &Resolver{logger: logger, store: store}
}

// Resolve looks up the track behind ref and applies label
// normalization. Lookup failures propagate; a bad lookup aborts the
// caller's resolution cycle rather than yielding a half-populated
// track.
func (r *Resolver) Resolve(ctx context.Context, ref domain.TrackRef) (*domain.Track, error) {
	meta, err := r.store.GetMetadata(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("metadata lookup for track %d on device %d: %w", ref.TrackID, ref.DeviceID, err)
	}

	track := &domain.Track{
		ID:          meta.ID,
		Title:       meta.Title,
		Artist:      domain.Artist{Name: meta.Artist},
		Label:       domain.Label{Name: normalizeLabel(meta.Label)},
		ArtworkPath: meta.ArtworkPath,
	}

	r.logger.Info("Resolved track",
		zap.Uint32("trackID", track.ID),
		zap.String("artist", track.Artist.Name),
		zap.String("title", track.Title),
		zap.String("label", track.Label.Name))

	return track, nil
}

// normalizeLabel rewrites the device database's bracketed "no label"
// marker to a plain human string and substitutes a fallback when the
// label is absent entirely.
func normalizeLabel(raw string) string {
	if raw == "" {
		return unknownLabel
	}
	return strings.ReplaceAll(raw, noLabelMarker, noLabelName)
}
