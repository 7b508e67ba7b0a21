package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/bootstrap"
	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/config"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/exploration"
	"github.com/xenopets/XenoPets_Go/internal/fishing"
	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/gamedata"
	"github.com/xenopets/XenoPets_Go/internal/persist"
	"github.com/xenopets/XenoPets_Go/internal/remote"
	"github.com/xenopets/XenoPets_Go/internal/rng"
	"github.com/xenopets/XenoPets_Go/internal/scheduler"
	"github.com/xenopets/XenoPets_Go/internal/server"
	"github.com/xenopets/XenoPets_Go/internal/worker"
)

const (
	shutdownTimeout = 30 * time.Second

	respawnInterval  = time.Second
	restockInterval  = 10 * time.Minute
	snapshotInterval = 5 * time.Minute

	poolWorkers   = 2
	poolQueueSize = 16
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("xenopets: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	clk := clock.NewReal()

	logFile, err := bootstrap.SetupLogger(cfg, clk)
	if err != nil {
		return err
	}
	defer logFile.Close()

	store, closeStore, err := bootstrap.NewStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	catalog, err := gamedata.Load()
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}
	if err := bootstrap.RegisterEventHandlers(bus); err != nil {
		return err
	}

	remoteClient := remote.NewClient(cfg.RemoteBaseURL, cfg.APIKey)
	gateway := persist.NewGateway(store, config.SnapshotKey)

	gameService := game.NewService(catalog, remoteClient, gateway, store, clk, publisher)
	fishingService := fishing.NewService(catalog, clk, rng.New(uint64(clk.Now().UnixNano())))
	explorationService := exploration.NewService(store)

	fishingService.SpawnAll(context.Background())

	hatchingWorker := worker.NewHatchingWorker(gameService, clk, bus)
	bus.Subscribe(event.EggHatchingStarted, func(ctx context.Context, _ event.Event) error {
		// StartHatching persists the egg before publishing, so the session
		// snapshot is the source of truth here rather than the payload.
		if egg := gameService.HatchingEgg(); egg != nil {
			hatchingWorker.ScheduleHatch(ctx, *egg)
		}
		return nil
	})

	workerPool := worker.NewPool(poolWorkers, poolQueueSize)
	workerPool.Start()

	jobScheduler := scheduler.New(workerPool)
	jobScheduler.Schedule(respawnInterval, &worker.RespawnJob{Fishing: fishingService, Clock: clk})
	jobScheduler.Schedule(restockInterval, &worker.RestockJob{Game: gameService})
	jobScheduler.Schedule(snapshotInterval, &worker.SnapshotJob{Game: gameService})

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, store,
		gameService, fishingService, explorationService, catalog)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	case sig := <-quit:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:         srv,
		Scheduler:      jobScheduler,
		WorkerPool:     workerPool,
		HatchingWorker: hatchingWorker,
		GameService:    gameService,
	})

	return nil
}
