// Package artwork resolves display artwork for the arbitrated track by
// racing the device-resident store against a remote catalog lookup.
package artwork

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/deckwatch/deckwatch/internal/config"
	"github.com/deckwatch/deckwatch/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Resolver races the local and remote artwork sources. Remote wins when
// both produce an image: catalog art is richer than the device's
// embedded thumbnails. That preference is fixed, not configurable.
type Resolver struct {
	logger  *zap.Logger
	cfg     config.Artwork
	store   domain.MetadataStore
	catalog domain.Catalog
	fetcher domain.Fetcher
}

// New creates an artwork resolver.
func New(logger *zap.Logger, cfg *config.Config, store domain.MetadataStore, catalog domain.Catalog, fetcher domain.Fetcher) *Resolver {
	return &Resolver{
		logger:  logger,
		cfg:     cfg.Artwork,
		store:   store,
		catalog: catalog,
		fetcher: fetcher,
	}
}

// Resolve runs both lookups concurrently and unconditionally, waits for
// both to settle, and reduces with the fixed preference: remote if
// non-empty, else local, else empty. Either branch failing is tolerated
// independently; errors are logged, never returned.
func (r *Resolver) Resolve(ctx context.Context, ref domain.TrackRef, track *domain.Track) string {
	var (
		wg                  sync.WaitGroup
		local, remote       string
		localErr, remoteErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		local, localErr = r.resolveLocal(ctx, ref, track)
	}()
	go func() {
		defer wg.Done()
		remote, remoteErr = r.resolveRemote(ctx, track)
	}()
	wg.Wait()

	if err := multierr.Append(localErr, remoteErr); err != nil {
		r.logger.Warn("Artwork lookup degraded",
			zap.Uint32("trackID", track.ID),
			zap.Error(err))
	}

	switch {
	case remote != "":
		return remote
	case local != "":
		return local
	default:
		return ""
	}
}

// resolveLocal fetches device-resident artwork, preferring the
// higher-resolution variant when the rewrite rule is enabled.
func (r *Resolver) resolveLocal(ctx context.Context, ref domain.TrackRef, track *domain.Track) (string, error) {
	path := track.ArtworkPath
	if path == "" {
		return "", nil
	}

	if r.cfg.PreferHighRes && r.cfg.HighResFrom != "" && strings.HasSuffix(path, r.cfg.HighResFrom) {
		path = strings.TrimSuffix(path, r.cfg.HighResFrom) + r.cfg.HighResTo
	}

	data, err := r.store.GetArtwork(ctx, ref, path)
	if err != nil {
		return "", fmt.Errorf("device artwork: %w", err)
	}
	if len(data) == 0 {
		return "", nil
	}

	return encodeDataURI(data, r.cfg.MaxEdge), nil
}

// resolveRemote cascades catalog search to cover lookup to download.
// A missing release or cover degrades quietly; only transport-level
// failures surface as errors to log.
func (r *Resolver) resolveRemote(ctx context.Context, track *domain.Track) (string, error) {
	releaseID, err := r.catalog.SearchRelease(ctx, track.Artist.Name, track.Title)
	if err != nil {
		if errors.Is(err, domain.ErrNoRelease) {
			r.logger.Debug("No catalog release for track", zap.Uint32("trackID", track.ID))
			return "", nil
		}
		return "", fmt.Errorf("catalog search: %w", err)
	}

	coverURL, err := r.catalog.CoverURL(ctx, releaseID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCover) {
			r.logger.Debug("No cover art for release", zap.String("releaseID", releaseID))
			return "", nil
		}
		return "", fmt.Errorf("cover lookup: %w", err)
	}

	data, err := r.fetcher.Fetch(ctx, coverURL)
	if err != nil {
		return "", fmt.Errorf("cover download: %w", err)
	}

	return encodeDataURI(data, r.cfg.MaxEdge), nil
}
