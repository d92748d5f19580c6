package domain

// DeviceID identifies one player slot on the device network.
// The set of ids is small and fixed for the process lifetime.
type DeviceID int

// NoTrackID is the sentinel track id a device reports when no track
// is loaded. It must never trigger metadata resolution.
const NoTrackID uint32 = 0

// TrackRef locates a track on the device network: which device holds it,
// in which media slot, and the slot's storage type.
type TrackRef struct {
	DeviceID DeviceID
	Slot     uint8
	Type     uint8
	TrackID  uint32
}

// PlaybackState is a per-device status snapshot as reported by the
// device network. Events arrive unordered across devices and may repeat
// without any field changing.
type PlaybackState struct {
	DeviceID DeviceID
	TrackID  uint32
	Ref      TrackRef
	Playing  bool
	OnAir    bool
	Master   bool
}

// Artist is the track's credited artist.
type Artist struct {
	Name string `json:"name"`
}

// Label is the track's release label.
type Label struct {
	Name string `json:"name"`
}

// TrackMetadata is the raw record returned by the device metadata store,
// before normalization.
type TrackMetadata struct {
	ID          uint32
	Title       string
	Artist      string
	Album       string
	Label       string
	ArtworkPath string
}

// Track is resolved, normalized track metadata. Immutable once built.
type Track struct {
	ID     uint32 `json:"id"`
	Title  string `json:"title"`
	Artist Artist `json:"artist"`
	Label  Label  `json:"label"`

	// ArtworkPath is the on-device artwork locator, kept for the local
	// artwork lookup. Not part of the wire payload.
	ArtworkPath string `json:"-"`
}

// NowPlayingPayload is the wire entity pushed to viewers. Artwork is a
// base64 data URI, or empty when no source produced an image.
type NowPlayingPayload struct {
	Track   *Track `json:"track"`
	Artwork string `json:"artwork"`
}
