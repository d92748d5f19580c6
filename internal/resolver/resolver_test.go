package resolver

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/deckwatch/deckwatch/internal/domain"
	"github.com/deckwatch/deckwatch/internal/domain/mocks"
)

func TestResolve(t *testing.T) {
	ref := domain.TrackRef{DeviceID: 2, Slot: 3, TrackID: 42}

	tests := []struct {
		name      string
		setupMock func(*mocks.MockMetadataStore)
		wantErr   bool
		wantTrack *domain.Track
	}{
		{
			name: "Success - plain label",
			setupMock: func(m *mocks.MockMetadataStore) {
				m.EXPECT().GetMetadata(gomock.Any(), ref).
					Return(&domain.TrackMetadata{
						ID:          42,
						Title:       "T",
						Artist:      "A",
						Label:       "Warp",
						ArtworkPath: "/ART/m.jpg",
					}, nil)
			},
			wantTrack: &domain.Track{
				ID:          42,
				Title:       "T",
				Artist:      domain.Artist{Name: "A"},
				Label:       domain.Label{Name: "Warp"},
				ArtworkPath: "/ART/m.jpg",
			},
		},
		{
			name: "Bracketed no-label marker is rewritten",
			setupMock: func(m *mocks.MockMetadataStore) {
				m.EXPECT().GetMetadata(gomock.Any(), ref).
					Return(&domain.TrackMetadata{
						ID:     42,
						Title:  "T",
						Artist: "A",
						Label:  "[no label]",
					}, nil)
			},
			wantTrack: &domain.Track{
				ID:     42,
				Title:  "T",
				Artist: domain.Artist{Name: "A"},
				Label:  domain.Label{Name: "no label"},
			},
		},
		{
			name: "Missing label gets the fallback",
			setupMock: func(m *mocks.MockMetadataStore) {
				m.EXPECT().GetMetadata(gomock.Any(), ref).
					Return(&domain.TrackMetadata{
						ID:     42,
						Title:  "T",
						Artist: "A",
					}, nil)
			},
			wantTrack: &domain.Track{
				ID:     42,
				Title:  "T",
				Artist: domain.Artist{Name: "A"},
				Label:  domain.Label{Name: "unknown label"},
			},
		},
		{
			name: "Lookup failure propagates",
			setupMock: func(m *mocks.MockMetadataStore) {
				m.EXPECT().GetMetadata(gomock.Any(), ref).
					Return(nil, fmt.Errorf("device went away"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockMetadataStore(ctrl)
			tt.setupMock(store)

			r := New(zap.NewNop(), store)
			track, err := r.Resolve(context.Background(), ref)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "device went away") {
					t.Errorf("error should wrap the lookup failure, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *track != *tt.wantTrack {
				t.Errorf("Resolve() = %+v, want %+v", track, tt.wantTrack)
			}
		})
	}
}
