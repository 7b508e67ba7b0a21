package worker

import (
	"context"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/logger"
	"github.com/xenopets/XenoPets_Go/internal/metrics"
)

// Respawner advances a respawn schedule to the given instant.
type Respawner interface {
	Advance(ctx context.Context, now time.Time) int
}

// Restocker tops up store stock.
type Restocker interface {
	RestockStores(ctx context.Context) int
}

// Snapshotter persists session state.
type Snapshotter interface {
	SaveSnapshot(ctx context.Context) error
}

// RespawnJob advances the fishing respawn schedule to the current time.
type RespawnJob struct {
	Fishing Respawner
	Clock   clock.Clock
}

func (j *RespawnJob) Process(ctx context.Context) error {
	respawned := j.Fishing.Advance(ctx, j.Clock.Now())
	if respawned > 0 {
		logger.FromContext(ctx).Info(LogMsgFishRespawned, "count", respawned)
	}
	return nil
}

// RestockJob tops up every open store toward its maximum stock.
type RestockJob struct {
	Game Restocker
}

func (j *RestockJob) Process(ctx context.Context) error {
	restocked := j.Game.RestockStores(ctx)
	if restocked > 0 {
		logger.FromContext(ctx).Info(LogMsgStoresRestocked, "entries", restocked)
	}
	return nil
}

// SnapshotJob persists the current session state.
type SnapshotJob struct {
	Game Snapshotter
}

func (j *SnapshotJob) Process(ctx context.Context) error {
	if err := j.Game.SaveSnapshot(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgSnapshotSaveFail, "error", err)
		return err
	}
	metrics.SnapshotSaves.Inc()
	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved)
	return nil
}
