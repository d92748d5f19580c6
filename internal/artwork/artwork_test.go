package artwork

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/deckwatch/deckwatch/internal/config"
	"github.com/deckwatch/deckwatch/internal/domain"
	"github.com/deckwatch/deckwatch/internal/domain/mocks"
)

func dataURI(raw string) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte(raw))
}

func TestResolvePreference(t *testing.T) {
	ref := domain.TrackRef{DeviceID: 2, TrackID: 42}
	track := &domain.Track{
		ID:          42,
		Title:       "T",
		Artist:      domain.Artist{Name: "A"},
		ArtworkPath: "/ART/m.jpg",
	}

	tests := []struct {
		name      string
		setupMock func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher)
		want      string
	}{
		{
			name: "Remote wins over local",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return([]byte("local"), nil)
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("mbid-1", nil)
				cat.EXPECT().CoverURL(gomock.Any(), "mbid-1").
					Return("http://covers/front.jpg", nil)
				fetch.EXPECT().Fetch(gomock.Any(), "http://covers/front.jpg").
					Return([]byte("remote"), nil)
			},
			want: dataURI("remote"),
		},
		{
			name: "No catalog release falls back to local",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return([]byte("local"), nil)
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("", domain.ErrNoRelease)
			},
			want: dataURI("local"),
		},
		{
			name: "No cover for release falls back to local",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return([]byte("local"), nil)
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("mbid-1", nil)
				cat.EXPECT().CoverURL(gomock.Any(), "mbid-1").
					Return("", domain.ErrNoCover)
			},
			want: dataURI("local"),
		},
		{
			name: "Remote branch failure does not poison local",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return([]byte("local"), nil)
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("", errors.New("catalog unreachable"))
			},
			want: dataURI("local"),
		},
		{
			name: "Local branch failure does not poison remote",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return(nil, errors.New("device went away"))
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("mbid-1", nil)
				cat.EXPECT().CoverURL(gomock.Any(), "mbid-1").
					Return("http://covers/front.jpg", nil)
				fetch.EXPECT().Fetch(gomock.Any(), "http://covers/front.jpg").
					Return([]byte("remote"), nil)
			},
			want: dataURI("remote"),
		},
		{
			name: "Both branches empty yields empty",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return(nil, nil)
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("", domain.ErrNoRelease)
			},
			want: "",
		},
		{
			name: "Both branches failing yields empty",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return(nil, errors.New("device went away"))
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("", errors.New("catalog unreachable"))
			},
			want: "",
		},
		{
			name: "Cover download failure degrades remote branch",
			setupMock: func(store *mocks.MockMetadataStore, cat *mocks.MockCatalog, fetch *mocks.MockFetcher) {
				store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/l.jpg").
					Return([]byte("local"), nil)
				cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
					Return("mbid-1", nil)
				cat.EXPECT().CoverURL(gomock.Any(), "mbid-1").
					Return("http://covers/front.jpg", nil)
				fetch.EXPECT().Fetch(gomock.Any(), "http://covers/front.jpg").
					Return(nil, errors.New("404"))
			},
			want: dataURI("local"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockMetadataStore(ctrl)
			cat := mocks.NewMockCatalog(ctrl)
			fetch := mocks.NewMockFetcher(ctrl)
			tt.setupMock(store, cat, fetch)

			r := New(zap.NewNop(), config.Default(), store, cat, fetch)
			got := r.Resolve(context.Background(), ref, track)

			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveLocalPathHandling(t *testing.T) {
	ref := domain.TrackRef{DeviceID: 2, TrackID: 42}

	t.Run("No artwork path skips the device lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMetadataStore(ctrl)
		cat := mocks.NewMockCatalog(ctrl)
		fetch := mocks.NewMockFetcher(ctrl)

		cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
			Return("", domain.ErrNoRelease)

		r := New(zap.NewNop(), config.Default(), store, cat, fetch)
		track := &domain.Track{ID: 42, Title: "T", Artist: domain.Artist{Name: "A"}}

		if got := r.Resolve(context.Background(), ref, track); got != "" {
			t.Errorf("Resolve() = %q, want empty", got)
		}
	})

	t.Run("High-res rewrite disabled keeps the original path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockMetadataStore(ctrl)
		cat := mocks.NewMockCatalog(ctrl)
		fetch := mocks.NewMockFetcher(ctrl)

		store.EXPECT().GetArtwork(gomock.Any(), ref, "/ART/m.jpg").
			Return([]byte("local"), nil)
		cat.EXPECT().SearchRelease(gomock.Any(), "A", "T").
			Return("", domain.ErrNoRelease)

		cfg := config.Default()
		cfg.Artwork.PreferHighRes = false

		r := New(zap.NewNop(), cfg, store, cat, fetch)
		track := &domain.Track{ID: 42, Title: "T", Artist: domain.Artist{Name: "A"}, ArtworkPath: "/ART/m.jpg"}

		if got := r.Resolve(context.Background(), ref, track); got != dataURI("local") {
			t.Errorf("Resolve() = %q, want local data URI", got)
		}
	})
}
