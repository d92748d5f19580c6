package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/deckwatch/deckwatch/internal/arbiter"
	"github.com/deckwatch/deckwatch/internal/artwork"
	"github.com/deckwatch/deckwatch/internal/catalog"
	"github.com/deckwatch/deckwatch/internal/config"
	"github.com/deckwatch/deckwatch/internal/domain"
	"github.com/deckwatch/deckwatch/internal/fetcher"
	"github.com/deckwatch/deckwatch/internal/hub"
	"github.com/deckwatch/deckwatch/internal/prolink"
	"github.com/deckwatch/deckwatch/internal/resolver"
	"github.com/deckwatch/deckwatch/internal/tracker"
)

// AppOptions is the full dependency graph, exported so tests can
// validate it with fx.ValidateApp.
var AppOptions = fx.Options(
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	fx.Provide(
		newLogger,
		config.Load,

		prolink.New,
		func(a *prolink.Adapter) domain.DeviceNetwork { return a },
		func(a *prolink.Adapter) domain.StatusSource { return a },
		func(a *prolink.Adapter) domain.MetadataStore { return a },
		func(a *prolink.Adapter) domain.MixPolicy { return a },

		newMemory,
		tracker.New,
		resolver.New,
		func(r *resolver.Resolver) domain.TrackResolver { return r },

		newFetcher,
		func(f *fetcher.HTTPFetcher) domain.Fetcher { return f },
		newCatalog,
		func(c *catalog.Client) domain.Catalog { return c },
		artwork.New,
		func(r *artwork.Resolver) domain.ArtworkResolver { return r },

		hub.New,
		func(h *hub.Hub) domain.Publisher { return h },

		arbiter.New,
	),

	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(AppOptions)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newMemory(cfg *config.Config) *tracker.Memory {
	return tracker.NewMemory(cfg.Network.DeviceSlots)
}

func newFetcher(logger *zap.Logger, cfg *config.Config) *fetcher.HTTPFetcher {
	return fetcher.NewHTTPFetcher(logger, cfg.Catalog.UserAgent, cfg.CatalogTimeout())
}

func newCatalog(logger *zap.Logger, cfg *config.Config) *catalog.Client {
	return catalog.NewClient(logger,
		cfg.Catalog.MusicBrainzURL,
		cfg.Catalog.CoverArtURL,
		cfg.Catalog.UserAgent,
		cfg.CatalogTimeout())
}

// registerHooks wires the network, viewer endpoint and pipeline into
// the fx lifecycle. Shutdown releases the protocol connection bounded
// by the configured timeout; a timed-out cleanup is logged, never
// retried, and does not block exit.
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg *config.Config,
	network domain.DeviceNetwork,
	h *hub.Hub,
	arb *arbiter.Arbiter,
) {
	runCtx, cancelRun := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := network.Connect(ctx); err != nil {
				return err
			}
			if err := h.Start(); err != nil {
				return err
			}
			go func() {
				if err := arb.Run(runCtx); err != nil && runCtx.Err() == nil {
					logger.Error("Pipeline stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancelRun()

			if err := h.Stop(ctx); err != nil {
				logger.Warn("Viewer endpoint shutdown failed", zap.Error(err))
			}

			dctx, cancel := context.WithTimeout(ctx, cfg.DisconnectTimeout())
			defer cancel()
			if err := network.Close(dctx); err != nil {
				logger.Error("Cleanup failed", zap.Error(err))
			}
			return nil
		},
	})
}
