// Package arbiter converts the raw per-device status stream into a
// single low-churn now-playing signal and drives artwork resolution
// for each arbitration change.
package arbiter

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/deckwatch/deckwatch/internal/domain"
	"github.com/deckwatch/deckwatch/internal/tracker"
)

// Arbiter is the single logical pipeline worker. One goroutine runs
// the event loop; each now-playing transition forks a resolution cycle
// so a slow artwork lookup never stalls state intake.
type Arbiter struct {
	logger    *zap.Logger
	tracker   *tracker.Tracker
	resolver  domain.TrackResolver
	artwork   domain.ArtworkResolver
	policy    domain.MixPolicy
	source    domain.StatusSource
	publisher domain.Publisher

	// Resolution cycles are numbered per transition. A cycle that
	// finishes after a newer cycle has published is stale and is
	// discarded instead of overwriting the fresher payload.
	pubMu     sync.Mutex
	nextCycle uint64
	published uint64
}

// New creates an arbiter over its collaborators.
func New(
	logger *zap.Logger,
	trk *tracker.Tracker,
	resolver domain.TrackResolver,
	artwork domain.ArtworkResolver,
	policy domain.MixPolicy,
	source domain.StatusSource,
	publisher domain.Publisher,
) *Arbiter {
	return &Arbiter{
		logger:    logger,
		tracker:   trk,
		resolver:  resolver,
		artwork:   artwork,
		policy:    policy,
		source:    source,
		publisher: publisher,
	}
}

// Run consumes device states and mastership changes until the context
// is cancelled or both upstream channels close. It is the only writer
// of per-device dedup state, so states for a given device are handled
// in arrival order without locking.
func (a *Arbiter) Run(ctx context.Context) error {
	states := a.source.States()
	nowPlaying := a.policy.NowPlaying()

	a.logger.Info("Now listening to the device network")
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Arbiter stopped")
			return ctx.Err()

		case state, ok := <-states:
			if !ok {
				a.logger.Info("Status stream closed")
				return nil
			}
			a.handleState(ctx, state)

		case state, ok := <-nowPlaying:
			if !ok {
				a.logger.Info("Mix policy stream closed")
				return nil
			}
			a.handleNowPlaying(ctx, state)
		}
	}
}

// handleState runs the dedup filter, resolves metadata for real track
// changes, and forwards every state to the mix policy. Sentinel
// "no track" changes are recorded but never resolved.
func (a *Arbiter) handleState(ctx context.Context, state domain.PlaybackState) {
	changed, err := a.tracker.Observe(state)
	if err != nil {
		a.logger.Warn("Rejected malformed state",
			zap.Int("device", int(state.DeviceID)),
			zap.Error(err))
		return
	}

	if changed && state.TrackID != domain.NoTrackID {
		track, err := a.resolver.Resolve(ctx, state.Ref)
		if err != nil {
			a.logger.Warn("Track resolution failed",
				zap.Int("device", int(state.DeviceID)),
				zap.Uint32("trackID", state.TrackID),
				zap.Error(err))
		} else {
			a.tracker.SetCurrentTrack(state.DeviceID, track)
		}
	}

	a.policy.HandleState(state)
}

// handleNowPlaying starts a resolution cycle for a mastership change.
// The track is re-resolved rather than read from the tracker: the
// policy event can race a dedup-filtered update, so cached metadata is
// not trusted.
func (a *Arbiter) handleNowPlaying(ctx context.Context, state domain.PlaybackState) {
	if state.TrackID == domain.NoTrackID {
		a.logger.Debug("Ignoring now-playing event without a loaded track",
			zap.Int("device", int(state.DeviceID)))
		return
	}

	a.pubMu.Lock()
	a.nextCycle++
	cycle := a.nextCycle
	a.pubMu.Unlock()

	a.logger.Info("Now playing changed",
		zap.Int("device", int(state.DeviceID)),
		zap.Uint32("trackID", state.TrackID))

	go a.runCycle(ctx, cycle, state)
}

// runCycle resolves track and artwork for one arbitration change and
// publishes the result unless a newer cycle already has. A resolution
// failure aborts only this cycle; the next status event restores
// correctness.
func (a *Arbiter) runCycle(ctx context.Context, cycle uint64, state domain.PlaybackState) {
	track, err := a.resolver.Resolve(ctx, state.Ref)
	if err != nil {
		a.logger.Warn("Resolution cycle aborted",
			zap.Int("device", int(state.DeviceID)),
			zap.Uint32("trackID", state.TrackID),
			zap.Error(err))
		return
	}
	a.tracker.SetCurrentTrack(state.DeviceID, track)

	art := a.artwork.Resolve(ctx, state.Ref, track)

	a.pubMu.Lock()
	if cycle <= a.published {
		a.pubMu.Unlock()
		a.logger.Debug("Discarding stale resolution cycle",
			zap.Uint64("cycle", cycle))
		return
	}
	a.published = cycle
	a.pubMu.Unlock()

	a.publisher.Publish(domain.NowPlayingPayload{Track: track, Artwork: art})
}
