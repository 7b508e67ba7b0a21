package worker

import (
	"context"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// Notifier pushes a notification into the session.
type Notifier interface {
	AddNotification(ctx context.Context, typ domain.NotificationType, title, message string)
}

// HatchingWorker fires a notification when an incubating egg becomes ready.
// One timer per egg, keyed by egg id.
type HatchingWorker struct {
	BaseWorker
	game  Notifier
	clock clock.Clock
	bus   event.Bus
}

// NewHatchingWorker creates a new HatchingWorker
func NewHatchingWorker(gameSvc Notifier, clk clock.Clock, bus event.Bus) *HatchingWorker {
	w := &HatchingWorker{
		game:  gameSvc,
		clock: clk,
		bus:   bus,
	}
	w.init()
	return w
}

// ScheduleHatch arms a timer that fires when the egg finishes incubating.
// An egg already past its ready time fires immediately.
func (w *HatchingWorker) ScheduleHatch(ctx context.Context, egg domain.HatchingEgg) {
	log := logger.FromContext(ctx)

	remaining := w.clock.Until(egg.ReadyAt())
	if remaining < 0 {
		remaining = 0
	}

	timer := time.AfterFunc(remaining, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.executeHatch(egg)
	})
	w.registerTimer(egg.ID, timer)

	log.Info(LogMsgHatchScheduled, "eggID", egg.ID, "readyIn", remaining)
}

// CancelHatch drops the pending timer for an egg, if any.
func (w *HatchingWorker) CancelHatch(ctx context.Context, eggID string) {
	w.stopTimer(eggID)
	logger.FromContext(ctx).Info(LogMsgHatchCancelled, "eggID", eggID)
}

func (w *HatchingWorker) executeHatch(egg domain.HatchingEgg) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.removeTimer(egg.ID)

		ctx := context.Background()
		log := logger.FromContext(ctx)

		w.game.AddNotification(ctx, domain.NotificationSuccess,
			"Ovo pronto!", "Seu ovo terminou de incubar e está pronto para chocar.")

		if w.bus != nil {
			evt := event.Event{
				Version: event.EventSchemaVersion,
				Type:    event.EggHatched,
				Payload: map[string]interface{}{
					"egg_id":   egg.ID,
					"user_id":  egg.UserID,
					"egg_type": egg.EggType,
					"ready_at": egg.ReadyAt().UTC(),
				},
			}
			if err := w.bus.Publish(ctx, evt); err != nil {
				log.Warn(LogMsgWorkerJobFailed, "error", err)
			}
		}

		log.Info(LogMsgEggHatched, "eggID", egg.ID, "userID", egg.UserID)
	}()
}

// Shutdown cancels pending timers and waits for in-flight hatches.
func (w *HatchingWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, "hatching worker")
}
