package bootstrap

import (
	"context"
	"log/slog"

	"github.com/xenopets/XenoPets_Go/internal/game"
	"github.com/xenopets/XenoPets_Go/internal/scheduler"
	"github.com/xenopets/XenoPets_Go/internal/server"
	"github.com/xenopets/XenoPets_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         *server.Server
	Scheduler      *scheduler.Scheduler
	WorkerPool     *worker.Pool
	HatchingWorker *worker.HatchingWorker
	GameService    game.Service
}

// GracefulShutdown stops the application components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (finish in-flight jobs)
// 3. Hatching worker (cancel pending timers, wait for running hatches)
// 4. Game service (persist a final snapshot)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgShuttingDownScheduler)
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.HatchingWorker != nil {
		if err := components.HatchingWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgHatchingShutdownError, "error", err)
		}
	}

	if components.GameService != nil && components.GameService.CurrentUser() != nil {
		slog.Info(LogMsgSavingFinalSnapshot)
		if err := components.GameService.SaveSnapshot(ctx); err != nil {
			slog.Error(LogMsgFinalSnapshotFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
