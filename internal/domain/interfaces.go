package domain

import "context"

// DeviceNetwork manages the connection to the device network.
// Implementations wrap the external protocol stack; the core never
// touches protocol internals.
type DeviceNetwork interface {
	// Connect brings the network online and starts emitting states.
	Connect(ctx context.Context) error

	// Close releases the network connection. The caller bounds cleanup
	// with the context deadline; exceeding it is logged, not retried.
	Close(ctx context.Context) error

	// Connected reports whether the network is currently online.
	Connected() bool
}

// StatusSource emits raw per-device playback states.
type StatusSource interface {
	// States returns a read-only channel of playback state events.
	// Per-device ordering follows arrival order; cross-device ordering
	// is not guaranteed.
	States() <-chan PlaybackState
}

// MetadataStore is the device network's track database.
type MetadataStore interface {
	// GetMetadata fetches the raw metadata record for a track reference.
	GetMetadata(ctx context.Context, ref TrackRef) (*TrackMetadata, error)

	// GetArtwork fetches device-resident artwork bytes for a track
	// reference. The path is an advisory hint for stores that address
	// artwork by file path; device-backed stores answer with the art
	// embedded in the track record and ignore it. A nil slice with nil
	// error means the device holds no artwork for the track.
	GetArtwork(ctx context.Context, ref TrackRef, path string) ([]byte, error)
}

// MixPolicy is the mix-status policy engine deciding which device is
// currently "the one playing". Its internal state is opaque.
type MixPolicy interface {
	// HandleState feeds one observed state into the policy engine.
	// Every state must be forwarded, changed or not, because mastership
	// evaluation needs continuous state.
	HandleState(state PlaybackState)

	// NowPlaying returns a read-only channel emitting the state of the
	// device newly arbitrated as now playing.
	NowPlaying() <-chan PlaybackState
}

// TrackResolver turns a track reference into normalized metadata.
type TrackResolver interface {
	Resolve(ctx context.Context, ref TrackRef) (*Track, error)
}

// ArtworkResolver resolves display artwork for an arbitrated track.
// The result is a base64 data URI, or empty when no source produced an
// image. It never fails; source errors degrade to empty.
type ArtworkResolver interface {
	Resolve(ctx context.Context, ref TrackRef, track *Track) string
}

// Catalog is the remote release catalog used for the fingerprint-based
// artwork lookup.
type Catalog interface {
	// SearchRelease finds the best-guess release id for an artist and
	// title. Returns ErrNoRelease when the catalog has no candidate.
	SearchRelease(ctx context.Context, artist, title string) (string, error)

	// CoverURL returns the cover image URL for a release id. Returns
	// ErrNoCover when the release has no cover art.
	CoverURL(ctx context.Context, releaseID string) (string, error)
}

// Fetcher retrieves image data from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Publisher delivers payloads to connected viewers, best effort.
type Publisher interface {
	// Publish attempts delivery to the active viewer channel. With no
	// open channel the payload is dropped; there is no queueing.
	Publish(payload NowPlayingPayload)
}
