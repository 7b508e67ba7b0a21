package fishing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/gamedata"
	"github.com/xenopets/XenoPets_Go/internal/rng"
)

func newTestScheduler(t *testing.T) (Service, *clock.Simulated) {
	t.Helper()
	catalog, err := gamedata.Load()
	require.NoError(t, err)

	clk := clock.NewSimulated(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	svc := NewService(catalog, clk, rng.New(42))
	return svc, clk
}

func TestService_SpawnAll(t *testing.T) {
	ctx := context.Background()

	t.Run("fills every spot with one fish", func(t *testing.T) {
		svc, _ := newTestScheduler(t)

		svc.SpawnAll(ctx)

		fish := svc.ActiveFish(ctx)
		assert.Len(t, fish, 3)
	})

	t.Run("is idempotent while spots are occupied", func(t *testing.T) {
		svc, _ := newTestScheduler(t)

		svc.SpawnAll(ctx)
		svc.SpawnAll(ctx)

		assert.Len(t, svc.ActiveFish(ctx), 3, "occupied spots must not double-spawn")
	})

	t.Run("spawned fish carry species metadata", func(t *testing.T) {
		svc, _ := newTestScheduler(t)
		svc.SpawnAll(ctx)

		for _, fish := range svc.ActiveFish(ctx) {
			assert.NotEmpty(t, fish.ID)
			assert.Contains(t, []string{"Peixinho Azul", "Peixinho Verde"}, fish.Species)
			assert.GreaterOrEqual(t, fish.Size, 2)
			assert.False(t, fish.Caught)
			assert.Contains(t, fish.Name, "Tamanho")
		}
	})
}

func TestService_FishNear(t *testing.T) {
	ctx := context.Background()

	t.Run("finds a fish within radius", func(t *testing.T) {
		svc, _ := newTestScheduler(t)
		svc.SpawnAll(ctx)

		found := svc.FishNear(ctx, 0.21, 0.71, DefaultCatchRadius)

		require.NotNil(t, found)
		assert.Equal(t, "Peixinho Azul", found.Species)
	})

	t.Run("misses outside the radius", func(t *testing.T) {
		svc, _ := newTestScheduler(t)
		svc.SpawnAll(ctx)

		assert.Nil(t, svc.FishNear(ctx, 0.05, 0.05, DefaultCatchRadius))
	})
}

func TestService_Catch(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the fish caught and removes it", func(t *testing.T) {
		svc, clock := newTestScheduler(t)
		svc.SpawnAll(ctx)
		target := svc.ActiveFish(ctx)[0]

		caught, err := svc.Catch(ctx, target.ID, "user-1")

		require.NoError(t, err)
		assert.True(t, caught.Caught)
		assert.Equal(t, "user-1", caught.CaughtBy)
		require.NotNil(t, caught.CaughtAt)
		assert.Equal(t, clock.Now(), *caught.CaughtAt)
		assert.Len(t, svc.ActiveFish(ctx), 2)
	})

	t.Run("second catch of the same fish fails", func(t *testing.T) {
		svc, _ := newTestScheduler(t)
		svc.SpawnAll(ctx)
		target := svc.ActiveFish(ctx)[0]

		_, err := svc.Catch(ctx, target.ID, "user-1")
		require.NoError(t, err)
		_, err = svc.Catch(ctx, target.ID, "user-2")

		assert.ErrorIs(t, err, domain.ErrFishNotFound)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		svc, _ := newTestScheduler(t)

		_, err := svc.Catch(ctx, "nope", "user-1")

		assert.ErrorIs(t, err, domain.ErrFishNotFound)
	})

	t.Run("catch schedules exactly one respawn per spot", func(t *testing.T) {
		svc, _ := newTestScheduler(t)
		svc.SpawnAll(ctx)
		target := svc.ActiveFish(ctx)[0]

		_, err := svc.Catch(ctx, target.ID, "user-1")
		require.NoError(t, err)

		stats := svc.Stats(ctx)
		assert.Equal(t, 2, stats.ActiveFish)
		assert.Equal(t, 1, stats.PendingRespawns)
	})
}

func TestService_RespawnCycle(t *testing.T) {
	ctx := context.Background()

	t.Run("fish respawns at the same spot after the delay", func(t *testing.T) {
		svc, clock := newTestScheduler(t)
		svc.SpawnAll(ctx)
		target := svc.ActiveFish(ctx)[0]

		_, err := svc.Catch(ctx, target.ID, "user-1")
		require.NoError(t, err)

		// Not due yet.
		clock.Advance(14 * time.Second)
		assert.Zero(t, svc.Advance(ctx, clock.Now()))
		assert.Len(t, svc.ActiveFish(ctx), 2)

		// 15 seconds total.
		clock.Advance(1 * time.Second)
		assert.Equal(t, 1, svc.Advance(ctx, clock.Now()))

		fish := svc.ActiveFish(ctx)
		assert.Len(t, fish, 3)

		respawned := svc.FishNear(ctx, target.X, target.Y, DefaultCatchRadius)
		require.NotNil(t, respawned)
		assert.Equal(t, target.Species, respawned.Species)
		assert.NotEqual(t, target.ID, respawned.ID, "respawn creates a new identity")
		assert.Zero(t, svc.Stats(ctx).PendingRespawns)
	})

	t.Run("advance with nothing due is a no-op", func(t *testing.T) {
		svc, clock := newTestScheduler(t)
		svc.SpawnAll(ctx)

		assert.Zero(t, svc.Advance(ctx, clock.Now()))
		assert.Len(t, svc.ActiveFish(ctx), 3)
	})

	t.Run("multiple catches respawn independently", func(t *testing.T) {
		svc, clock := newTestScheduler(t)
		svc.SpawnAll(ctx)

		for _, fish := range svc.ActiveFish(ctx) {
			_, err := svc.Catch(ctx, fish.ID, "user-1")
			require.NoError(t, err)
		}
		assert.Equal(t, 3, svc.Stats(ctx).PendingRespawns)

		clock.Advance(15 * time.Second)
		assert.Equal(t, 3, svc.Advance(ctx, clock.Now()))
		assert.Len(t, svc.ActiveFish(ctx), 3)
	})
}

func TestService_ConvertToItem(t *testing.T) {
	ctx := context.Background()
	svc, clock := newTestScheduler(t)
	svc.SpawnAll(ctx)
	target := svc.ActiveFish(ctx)[0]

	caught, err := svc.Catch(ctx, target.ID, "user-1")
	require.NoError(t, err)

	item := svc.ConvertToItem(caught)

	assert.Equal(t, domain.ItemTypeFish, item.Type)
	assert.Equal(t, caught.Rarity, item.Rarity)
	assert.Contains(t, item.Slug, "-size-")
	require.NotNil(t, item.FishData)
	assert.Equal(t, caught.Species, item.FishData.Species)
	assert.Equal(t, caught.Size, item.FishData.Size)
	assert.Equal(t, clock.Now(), item.FishData.CaughtAt)
	assert.Equal(t, caught.X, item.FishData.CaughtPosition.X)
}

func TestService_Cleanup(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestScheduler(t)
	svc.SpawnAll(ctx)
	target := svc.ActiveFish(ctx)[0]
	_, err := svc.Catch(ctx, target.ID, "user-1")
	require.NoError(t, err)

	svc.Cleanup(ctx)

	stats := svc.Stats(ctx)
	assert.Zero(t, stats.ActiveFish)
	assert.Zero(t, stats.PendingRespawns)
}
