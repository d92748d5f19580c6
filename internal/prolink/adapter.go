// Package prolink adapts the external ProLink protocol stack to the
// domain interfaces. It is the only package that imports the protocol
// library; the core sees channels and lookups, not protocol internals.
package prolink

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	plink "go.evanpurkhiser.com/prolink"
	"go.evanpurkhiser.com/prolink/mixstatus"
	"go.uber.org/zap"

	"github.com/deckwatch/deckwatch/internal/domain"
)

const autoConfigureWait = 3 * time.Second

// Adapter bridges the ProLink network to the pipeline. It implements
// domain.DeviceNetwork, domain.StatusSource, domain.MetadataStore and
// domain.MixPolicy.
type Adapter struct {
	logger *zap.Logger

	states     chan domain.PlaybackState
	nowPlaying chan domain.PlaybackState

	mu        sync.Mutex
	network   *plink.Network
	processor *mixstatus.Processor
	lastRaw   map[domain.DeviceID]*plink.CDJStatus
	seen      map[plink.DeviceID]bool
	connected bool

	lastDropWarning time.Time
}

// New creates a disconnected adapter. Connect brings it online.
func New(logger *zap.Logger) *Adapter {
	return &Adapter{
		logger:     logger,
		states:     make(chan domain.PlaybackState, 64),
		nowPlaying: make(chan domain.PlaybackState, 8),
		lastRaw:    make(map[domain.DeviceID]*plink.CDJStatus),
		seen:       make(map[plink.DeviceID]bool),
	}
}

// Connect brings the ProLink network online, auto-configures from
// peers, and starts forwarding device status into the states channel.
func (a *Adapter) Connect(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.connected {
		return nil
	}

	a.logger.Info("Bringing the ProLink network online")
	network, err := plink.Connect()
	if err != nil {
		return fmt.Errorf("connect to prolink network: %w", err)
	}

	a.logger.Info("Auto-configuring the ProLink network from peers")
	if err := network.AutoConfigure(autoConfigureWait); err != nil {
		// The connection is already up; tear it down before reporting.
		if derr := network.Disconnect(); derr != nil {
			a.logger.Warn("Failed to disconnect after auto-configure error", zap.Error(derr))
		}
		return fmt.Errorf("auto-configure prolink network: %w", err)
	}

	network.DeviceManager().OnDeviceAdded("deckwatch", plink.DeviceListenerFunc(func(dev *plink.Device) {
		a.mu.Lock()
		known := a.seen[dev.ID]
		a.seen[dev.ID] = true
		a.mu.Unlock()
		if !known {
			a.logger.Info("Device found on ProLink network",
				zap.Int("id", int(dev.ID)),
				zap.String("name", dev.Name))
		}
	}))

	a.processor = mixstatus.NewProcessor()
	a.processor.SetHandler(mixstatus.HandlerFunc(func(event mixstatus.Event, status *plink.CDJStatus) {
		if event != mixstatus.NowPlaying {
			return
		}
		state := toDomain(status)
		select {
		case a.nowPlaying <- state:
		default:
			a.logger.Warn("Now-playing channel full, event dropped",
				zap.Int("device", int(state.DeviceID)))
		}
	}))

	network.CDJStatusMonitor().OnStatusUpdate(plink.StatusHandlerFunc(func(status *plink.CDJStatus) {
		a.mu.Lock()
		a.lastRaw[domain.DeviceID(status.PlayerID)] = status
		a.mu.Unlock()

		select {
		case a.states <- toDomain(status):
		default:
			a.warnDrop(status)
		}
	}))

	a.network = network
	a.connected = true
	a.logger.Info("Connected to the ProLink network")
	return nil
}

// warnDrop rate-limits the channel-full warning so a stalled consumer
// does not flood the log at status-packet frequency.
func (a *Adapter) warnDrop(status *plink.CDJStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastDropWarning) < 5*time.Second {
		return
	}
	a.lastDropWarning = time.Now()
	a.logger.Warn("Status channel full, state dropped",
		zap.Int("device", int(status.PlayerID)))
}

// Close releases the network connection, bounded by the context
// deadline. Exceeding the deadline is treated as failed-but-completed:
// it is logged and the adapter is marked disconnected regardless.
func (a *Adapter) Close(ctx context.Context) error {
	a.mu.Lock()
	network := a.network
	a.network = nil
	a.connected = false
	a.mu.Unlock()

	if network == nil {
		return nil
	}

	a.logger.Info("Disconnecting from the ProLink network")
	done := make(chan error, 1)
	go func() {
		done <- network.Disconnect()
	}()

	select {
	case err := <-done:
		if err != nil {
			a.logger.Error("Cleanup failed", zap.Error(err))
			return err
		}
		a.logger.Info("Disconnected from the ProLink network")
		return nil
	case <-ctx.Done():
		a.logger.Error("Cleanup timed out", zap.Error(ctx.Err()))
		return errors.New("cleanup timed out")
	}
}

// Connected reports whether the network is online.
func (a *Adapter) Connected() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.connected
}

// States returns the device status event channel.
func (a *Adapter) States() <-chan domain.PlaybackState {
	return a.states
}

// HandleState forwards a state to the mix-status processor. The raw
// protocol status for the device is replayed when available so the
// processor keeps the full fidelity mastership evaluation needs.
func (a *Adapter) HandleState(state domain.PlaybackState) {
	a.mu.Lock()
	raw := a.lastRaw[state.DeviceID]
	processor := a.processor
	a.mu.Unlock()

	if processor == nil || raw == nil {
		return
	}
	processor.OnStatusUpdate(raw)
}

// NowPlaying returns the channel of mastership changes.
func (a *Adapter) NowPlaying() <-chan domain.PlaybackState {
	return a.nowPlaying
}

// GetMetadata fetches a track's metadata record from the device the
// track is loaded from.
func (a *Adapter) GetMetadata(ctx context.Context, ref domain.TrackRef) (*domain.TrackMetadata, error) {
	network, err := a.requireNetwork()
	if err != nil {
		return nil, err
	}

	track, err := network.RemoteDB().GetTrack(trackQuery(ref))
	if err != nil {
		return nil, fmt.Errorf("remote db track query: %w", err)
	}

	return &domain.TrackMetadata{
		ID:          track.ID,
		Title:       track.Title,
		Artist:      track.Artist,
		Album:       track.Album,
		Label:       track.Label,
		ArtworkPath: track.Path,
	}, nil
}

// GetArtwork fetches device-resident artwork bytes. The remote DB
// protocol answers only with the artwork embedded in the track record,
// so the path hint is ignored here; it exists for stores that read
// artwork files directly. An empty answer means the track has none.
func (a *Adapter) GetArtwork(ctx context.Context, ref domain.TrackRef, path string) ([]byte, error) {
	network, err := a.requireNetwork()
	if err != nil {
		return nil, err
	}

	track, err := network.RemoteDB().GetTrack(trackQuery(ref))
	if err != nil {
		return nil, fmt.Errorf("remote db artwork query: %w", err)
	}

	return track.Artwork, nil
}

func (a *Adapter) requireNetwork() (*plink.Network, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.network == nil {
		return nil, errors.New("prolink network not connected")
	}
	return a.network, nil
}

func trackQuery(ref domain.TrackRef) *plink.TrackQuery {
	return &plink.TrackQuery{
		DeviceID: plink.DeviceID(ref.DeviceID),
		Slot:     plink.TrackSlot(ref.Slot),
		TrackID:  ref.TrackID,
	}
}

// toDomain projects a protocol status packet onto the pipeline's
// state model.
func toDomain(status *plink.CDJStatus) domain.PlaybackState {
	return domain.PlaybackState{
		DeviceID: domain.DeviceID(status.PlayerID),
		TrackID:  status.TrackID,
		Ref: domain.TrackRef{
			DeviceID: domain.DeviceID(status.TrackDevice),
			Slot:     uint8(status.TrackSlot),
			Type:     uint8(status.TrackType),
			TrackID:  status.TrackID,
		},
		Playing: status.PlayState == plink.PlayStatePlaying,
		OnAir:   status.IsOnAir,
		Master:  status.IsMaster,
	}
}
