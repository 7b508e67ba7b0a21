package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
)

type fakeNotifier struct {
	mu     sync.Mutex
	titles []string
}

func (f *fakeNotifier) AddNotification(ctx context.Context, typ domain.NotificationType, title, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titles = append(f.titles, title)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.titles)
}

func TestHatchingWorker(t *testing.T) {
	newEgg := func(start time.Time) domain.HatchingEgg {
		return domain.HatchingEgg{
			ID:        "egg-1",
			UserID:    "user-1",
			EggType:   "Ovo Alpha",
			StartTime: start,
		}
	}

	t.Run("fires when the egg is ready", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		clk := clock.NewSimulated(start)
		notifier := &fakeNotifier{}
		bus := event.NewMemoryBus()

		var hatched int
		var mu sync.Mutex
		bus.Subscribe(event.EggHatched, func(ctx context.Context, evt event.Event) error {
			mu.Lock()
			defer mu.Unlock()
			hatched++
			return nil
		})

		w := NewHatchingWorker(notifier, clk, bus)
		defer func() { require.NoError(t, w.Shutdown(context.Background())) }()

		// Walk the simulated clock to just shy of ready so the real timer
		// only has to cover a few milliseconds.
		clk.Advance(domain.HatchDuration - 10*time.Millisecond)
		w.ScheduleHatch(context.Background(), newEgg(start))

		assert.Eventually(t, func() bool {
			mu.Lock()
			defer mu.Unlock()
			return hatched == 1 && notifier.count() == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("an overdue egg fires immediately", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		clk := clock.NewSimulated(start.Add(domain.HatchDuration + time.Hour))
		notifier := &fakeNotifier{}

		w := NewHatchingWorker(notifier, clk, nil)
		defer func() { require.NoError(t, w.Shutdown(context.Background())) }()

		w.ScheduleHatch(context.Background(), newEgg(start))

		assert.Eventually(t, func() bool {
			return notifier.count() == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("cancel drops the pending timer", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		clk := clock.NewSimulated(start)
		notifier := &fakeNotifier{}

		w := NewHatchingWorker(notifier, clk, nil)
		defer func() { require.NoError(t, w.Shutdown(context.Background())) }()

		w.ScheduleHatch(context.Background(), newEgg(start))
		w.CancelHatch(context.Background(), "egg-1")

		time.Sleep(50 * time.Millisecond)
		assert.Zero(t, notifier.count())
	})
}
