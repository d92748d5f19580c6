package tracker

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/deckwatch/deckwatch/internal/domain"
)

func state(device domain.DeviceID, trackID uint32) domain.PlaybackState {
	return domain.PlaybackState{
		DeviceID: device,
		TrackID:  trackID,
		Ref: domain.TrackRef{
			DeviceID: device,
			TrackID:  trackID,
		},
	}
}

func TestObserve(t *testing.T) {
	tests := []struct {
		name        string
		states      []domain.PlaybackState
		wantChanged []bool
	}{
		{
			name:        "First state is always a change",
			states:      []domain.PlaybackState{state(1, 42)},
			wantChanged: []bool{true},
		},
		{
			name: "Repeated track id is filtered",
			states: []domain.PlaybackState{
				state(1, 42),
				state(1, 42),
				state(1, 42),
			},
			wantChanged: []bool{true, false, false},
		},
		{
			name: "Track change is reported",
			states: []domain.PlaybackState{
				state(1, 42),
				state(1, 43),
			},
			wantChanged: []bool{true, true},
		},
		{
			name: "Sentinel to real track is one change",
			states: []domain.PlaybackState{
				state(1, domain.NoTrackID),
				state(1, 42),
				state(1, 42),
			},
			wantChanged: []bool{true, true, false},
		},
		{
			name: "Eject and reload registers again",
			states: []domain.PlaybackState{
				state(1, 42),
				state(1, domain.NoTrackID),
				state(1, 42),
			},
			wantChanged: []bool{true, true, true},
		},
		{
			name: "Devices are tracked independently",
			states: []domain.PlaybackState{
				state(1, 42),
				state(2, 42),
				state(1, 42),
			},
			wantChanged: []bool{true, true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trk := New(zap.NewNop(), NewMemory(4))

			for i, st := range tt.states {
				changed, err := trk.Observe(st)
				if err != nil {
					t.Fatalf("Observe(%d) unexpected error: %v", i, err)
				}
				if changed != tt.wantChanged[i] {
					t.Errorf("Observe(%d) changed = %v, want %v", i, changed, tt.wantChanged[i])
				}
			}
		})
	}
}

func TestObserveUnknownDevice(t *testing.T) {
	trk := New(zap.NewNop(), NewMemory(4))

	_, err := trk.Observe(state(9, 42))
	if !errors.Is(err, domain.ErrUnknownDevice) {
		t.Fatalf("expected ErrUnknownDevice, got %v", err)
	}
}

func TestCurrentTrack(t *testing.T) {
	trk := New(zap.NewNop(), NewMemory(4))

	if got := trk.CurrentTrack(1); got != nil {
		t.Fatalf("expected no current track, got %+v", got)
	}

	track := &domain.Track{ID: 42, Title: "T"}
	trk.SetCurrentTrack(1, track)

	if got := trk.CurrentTrack(1); got != track {
		t.Errorf("CurrentTrack(1) = %+v, want %+v", got, track)
	}
	if got := trk.CurrentTrack(2); got != nil {
		t.Errorf("CurrentTrack(2) = %+v, want nil", got)
	}

	// Unknown device ids are ignored, not panicked on.
	trk.SetCurrentTrack(9, track)
	if got := trk.CurrentTrack(9); got != nil {
		t.Errorf("CurrentTrack(9) = %+v, want nil", got)
	}
}
