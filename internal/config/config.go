package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

const (
	defaultListen            = ":8080"
	defaultWSPath            = "/api/ws"
	defaultDeviceSlots       = 4
	defaultDisconnectTimeout = 5 * time.Second
	defaultHeartbeatInterval = 29 * time.Second
	defaultCatalogTimeout    = 10 * time.Second
	defaultMusicBrainzURL    = "https://musicbrainz.org/ws/2"
	defaultCoverArtURL       = "https://coverartarchive.org"
	defaultUserAgent         = "deckwatch/0.1 (https://github.com/deckwatch/deckwatch)"
)

// Network holds device network and viewer endpoint settings.
type Network struct {
	Listen                   string `toml:"listen"`
	WSPath                   string `toml:"ws_path"`
	DeviceSlots              int    `toml:"device_slots"`
	DisconnectTimeoutSeconds int    `toml:"disconnect_timeout_seconds"`
	HeartbeatSeconds         int    `toml:"heartbeat_seconds"`
}

// Artwork holds artwork resolution settings.
type Artwork struct {
	PreferHighRes bool   `toml:"prefer_high_res"`
	HighResFrom   string `toml:"high_res_from"`
	HighResTo     string `toml:"high_res_to"`
	MaxEdge       int    `toml:"max_edge"`
}

// Catalog holds remote catalog endpoints. The base URLs are
// configurable so tests can point them at local servers.
type Catalog struct {
	MusicBrainzURL string `toml:"musicbrainz_url"`
	CoverArtURL    string `toml:"coverart_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Config is the full application configuration.
type Config struct {
	Network Network `toml:"network"`
	Artwork Artwork `toml:"artwork"`
	Catalog Catalog `toml:"catalog"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Network: Network{
			Listen:                   defaultListen,
			WSPath:                   defaultWSPath,
			DeviceSlots:              defaultDeviceSlots,
			DisconnectTimeoutSeconds: int(defaultDisconnectTimeout / time.Second),
			HeartbeatSeconds:         int(defaultHeartbeatInterval / time.Second),
		},
		Artwork: Artwork{
			PreferHighRes: true,
			HighResFrom:   "m.jpg",
			HighResTo:     "l.jpg",
			MaxEdge:       1000,
		},
		Catalog: Catalog{
			MusicBrainzURL: defaultMusicBrainzURL,
			CoverArtURL:    defaultCoverArtURL,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: int(defaultCatalogTimeout / time.Second),
		},
	}
}

// Load reads configuration from the path in DECKWATCH_CONFIG, falling
// back to ~/.config/deckwatch/config.toml. A missing file yields the
// defaults; a malformed file is an error.
func Load(logger *zap.Logger) (*Config, error) {
	path := os.Getenv("DECKWATCH_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".config", "deckwatch", "config.toml")
		}
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			logger.Info("No config file, using defaults", zap.String("path", path))
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			logger.Info("Configuration loaded", zap.String("path", path))
		}
	}

	if listen := os.Getenv("DECKWATCH_LISTEN"); listen != "" {
		cfg.Network.Listen = listen
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Network.DeviceSlots < 1 {
		return fmt.Errorf("network.device_slots must be positive, got %d", c.Network.DeviceSlots)
	}
	if c.Network.DisconnectTimeoutSeconds < 1 {
		return fmt.Errorf("network.disconnect_timeout_seconds must be positive, got %d", c.Network.DisconnectTimeoutSeconds)
	}
	if c.Network.HeartbeatSeconds < 1 {
		return fmt.Errorf("network.heartbeat_seconds must be positive, got %d", c.Network.HeartbeatSeconds)
	}
	if c.Network.WSPath == "" {
		return errors.New("network.ws_path must not be empty")
	}
	if c.Catalog.MusicBrainzURL == "" || c.Catalog.CoverArtURL == "" {
		return errors.New("catalog URLs must not be empty")
	}
	return nil
}

// DisconnectTimeout returns the bound on network cleanup at shutdown.
func (c *Config) DisconnectTimeout() time.Duration {
	return time.Duration(c.Network.DisconnectTimeoutSeconds) * time.Second
}

// HeartbeatInterval returns the keepalive period viewers are expected
// to ping on.
func (c *Config) HeartbeatInterval() time.Duration {
	return time.Duration(c.Network.HeartbeatSeconds) * time.Second
}

// CatalogTimeout returns the per-request timeout for catalog lookups.
func (c *Config) CatalogTimeout() time.Duration {
	return time.Duration(c.Catalog.TimeoutSeconds) * time.Second
}
