// Package catalog implements the remote release catalog lookup against
// MusicBrainz and the Cover Art Archive.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/deckwatch/deckwatch/internal/domain"
	"go.uber.org/zap"
)

// Client queries MusicBrainz for a best-guess release and the Cover
// Art Archive for its cover image URL. Base URLs are injectable so
// tests can run against local servers.
type Client struct {
	logger         *zap.Logger
	musicBrainzURL string
	coverArtURL    string
	userAgent      string
	client         *http.Client
}

// NewClient creates a catalog client.
func NewClient(logger *zap.Logger, musicBrainzURL, coverArtURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		logger:         logger,
		musicBrainzURL: musicBrainzURL,
		coverArtURL:    coverArtURL,
		userAgent:      userAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// errNotFound marks a 404 answer; only the cover lookup treats it as
// a meaningful "no art" signal.
var errNotFound = errors.New("not found")

type recordingSearchResponse struct {
	Recordings []struct {
		ID       string `json:"id"`
		Releases []struct {
			ID string `json:"id"`
		} `json:"releases"`
	} `json:"recordings"`
}

type coversResponse struct {
	Images []struct {
		Image string `json:"image"`
		Front bool   `json:"front"`
	} `json:"images"`
}

// SearchRelease looks up a recording by artist and title and returns
// the first release id of the first matching recording, the catalog's
// best guess for the track's origin release.
func (c *Client) SearchRelease(ctx context.Context, artist, title string) (string, error) {
	query := fmt.Sprintf(`artist:%q AND recording:%q AND primarytype:Single`, artist, title)
	u := fmt.Sprintf("%s/recording?fmt=json&limit=1&query=%s", c.musicBrainzURL, url.QueryEscape(query))

	c.logger.Debug("Searching catalog recording",
		zap.String("artist", artist),
		zap.String("title", title))

	var result recordingSearchResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		return "", fmt.Errorf("recording search: %w", err)
	}

	if len(result.Recordings) == 0 || len(result.Recordings[0].Releases) == 0 {
		return "", domain.ErrNoRelease
	}

	releaseID := result.Recordings[0].Releases[0].ID
	c.logger.Debug("Found catalog release", zap.String("releaseID", releaseID))
	return releaseID, nil
}

// CoverURL returns the URL of the first cover image registered for a
// release. The archive answers 404 for releases without art, which
// maps to ErrNoCover.
func (c *Client) CoverURL(ctx context.Context, releaseID string) (string, error) {
	u := fmt.Sprintf("%s/release/%s", c.coverArtURL, url.PathEscape(releaseID))

	var result coversResponse
	if err := c.getJSON(ctx, u, &result); err != nil {
		if errors.Is(err, errNotFound) {
			return "", domain.ErrNoCover
		}
		return "", fmt.Errorf("cover lookup for release %s: %w", releaseID, err)
	}

	if len(result.Images) == 0 {
		return "", domain.ErrNoCover
	}

	return result.Images[0].Image, nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
