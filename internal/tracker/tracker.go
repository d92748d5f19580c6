// Package tracker maintains the last-seen playback state per device
// slot and filters out no-op status updates.
package tracker

import (
	"sync"

	"github.com/deckwatch/deckwatch/internal/domain"
	"go.uber.org/zap"
)

type slot struct {
	seen         bool
	state        domain.PlaybackState
	currentTrack *domain.Track
}

// Memory is the fixed-size per-device state store. It is created once
// at startup with one slot per configured device and injected into the
// tracker; nothing else mutates it.
type Memory struct {
	slots map[domain.DeviceID]*slot
}

// NewMemory pre-populates a store with unknown placeholders for device
// ids 1..slots.
func NewMemory(slots int) *Memory {
	m := &Memory{slots: make(map[domain.DeviceID]*slot, slots)}
	for id := 1; id <= slots; id++ {
		m.slots[domain.DeviceID(id)] = &slot{}
	}
	return m
}

// Tracker deduplicates the raw status stream. Observe has a single
// caller, the arbiter loop, and needs no locking; the diagnostic
// current-track slot is also written by forked resolution cycles and
// carries its own lock.
type Tracker struct {
	logger *zap.Logger
	memory *Memory

	trackMu sync.RWMutex
}

// New creates a tracker over an injected state store.
func New(logger *zap.Logger, memory *Memory) *Tracker {
	return &Tracker{logger: logger, memory: memory}
}

// Observe records a state and reports whether it changes the device's
// track identity. A state for an unconfigured device id is a
// precondition violation and returns ErrUnknownDevice.
//
// A transition to the no-track sentinel is still recorded so a later
// reload of the same track registers as a change, but callers must not
// resolve it.
func (t *Tracker) Observe(state domain.PlaybackState) (bool, error) {
	s, ok := t.memory.slots[state.DeviceID]
	if !ok {
		return false, domain.ErrUnknownDevice
	}

	if s.seen && s.state.TrackID == state.TrackID {
		return false, nil
	}

	s.seen = true
	s.state = state
	t.logger.Info("Device track changed",
		zap.Int("device", int(state.DeviceID)),
		zap.Uint32("trackID", state.TrackID))
	return true, nil
}

// SetCurrentTrack records the last resolved track for a device. This is
// diagnostic state only; nothing in the pipeline reads it back.
func (t *Tracker) SetCurrentTrack(id domain.DeviceID, track *domain.Track) {
	t.trackMu.Lock()
	defer t.trackMu.Unlock()
	if s, ok := t.memory.slots[id]; ok {
		s.currentTrack = track
	}
}

// CurrentTrack returns the last resolved track recorded for a device,
// or nil.
func (t *Tracker) CurrentTrack(id domain.DeviceID) *domain.Track {
	t.trackMu.RLock()
	defer t.trackMu.RUnlock()
	if s, ok := t.memory.slots[id]; ok {
		return s.currentTrack
	}
	return nil
}
