package exploration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/persist"
)

func newTestService() (Service, *persist.MemoryStore) {
	store := persist.NewMemoryStore()
	return NewService(store), store
}

func TestService_Points(t *testing.T) {
	ctx := context.Background()

	t.Run("returns generated layout when no override exists", func(t *testing.T) {
		svc, _ := newTestService()

		points, err := svc.Points(ctx, "planet-3")

		require.NoError(t, err)
		assert.Len(t, points, 5)
		assert.Equal(t, Generate("planet-3"), points)
	})

	t.Run("repeated calls are stable", func(t *testing.T) {
		svc, _ := newTestService()

		first, err := svc.Points(ctx, "planet-3")
		require.NoError(t, err)
		second, err := svc.Points(ctx, "planet-3")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("stored override wins over generation", func(t *testing.T) {
		svc, _ := newTestService()

		// An edit creates the override.
		name := "Cratera Renomeada"
		_, err := svc.UpdatePoint(ctx, "planet-3", "planet-3_point_1", PointUpdate{Name: &name})
		require.NoError(t, err)

		points, err := svc.Points(ctx, "planet-3")
		require.NoError(t, err)
		assert.Equal(t, "Cratera Renomeada", points[0].Name)
	})

	t.Run("override survives a fresh service on the same store", func(t *testing.T) {
		store := persist.NewMemoryStore()
		svc := NewService(store)

		size := 2.5
		_, err := svc.UpdatePoint(ctx, "planet-4", "planet-4_point_2", PointUpdate{Size: &size})
		require.NoError(t, err)

		reopened := NewService(store)
		points, err := reopened.Points(ctx, "planet-4")
		require.NoError(t, err)
		assert.Equal(t, 2.5, points[1].Size)
	})
}

func TestService_Area(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the interior for a known point", func(t *testing.T) {
		svc, _ := newTestService()

		area, err := svc.Area(ctx, "planet-3", "planet-3_point_1")

		require.NoError(t, err)
		assert.Equal(t, "planet-3_point_1", area.PointID)
		assert.NotEmpty(t, area.Name)
	})

	t.Run("unknown point returns ErrPointNotFound", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Area(ctx, "planet-3", "planet-3_point_99")

		assert.ErrorIs(t, err, domain.ErrPointNotFound)
	})
}

func TestService_AdminEdits(t *testing.T) {
	ctx := context.Background()

	t.Run("update applies only the provided fields", func(t *testing.T) {
		svc, _ := newTestService()
		before, err := svc.Points(ctx, "planet-3")
		require.NoError(t, err)

		x := 33.0
		updated, err := svc.UpdatePoint(ctx, "planet-3", "planet-3_point_2", PointUpdate{X: &x})

		require.NoError(t, err)
		assert.Equal(t, 33.0, updated.X)
		assert.Equal(t, before[1].Y, updated.Y, "unset fields stay put")
		assert.Equal(t, before[1].Name, updated.Name)
	})

	t.Run("update on unknown point fails", func(t *testing.T) {
		svc, _ := newTestService()

		x := 1.0
		_, err := svc.UpdatePoint(ctx, "planet-3", "missing", PointUpdate{X: &x})

		assert.ErrorIs(t, err, domain.ErrPointNotFound)
	})

	t.Run("toggle flips active and persists", func(t *testing.T) {
		svc, _ := newTestService()

		toggled, err := svc.ToggleActive(ctx, "planet-3", "planet-3_point_1")
		require.NoError(t, err)
		assert.False(t, toggled.Active)

		points, err := svc.Points(ctx, "planet-3")
		require.NoError(t, err)
		assert.False(t, points[0].Active)

		again, err := svc.ToggleActive(ctx, "planet-3", "planet-3_point_1")
		require.NoError(t, err)
		assert.True(t, again.Active)
	})

	t.Run("add appends a custom point", func(t *testing.T) {
		svc, _ := newTestService()

		added, err := svc.AddPoint(ctx, "planet-3", 55, 45)
		require.NoError(t, err)
		assert.Contains(t, added.ID, "planet-3_custom_")
		assert.Equal(t, 55.0, added.X)

		points, err := svc.Points(ctx, "planet-3")
		require.NoError(t, err)
		assert.Len(t, points, 6)
	})

	t.Run("remove deletes a point", func(t *testing.T) {
		svc, _ := newTestService()

		require.NoError(t, svc.RemovePoint(ctx, "planet-3", "planet-3_point_5"))

		points, err := svc.Points(ctx, "planet-3")
		require.NoError(t, err)
		assert.Len(t, points, 4)
		for _, point := range points {
			assert.NotEqual(t, "planet-3_point_5", point.ID)
		}
	})

	t.Run("remove on unknown point fails", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.RemovePoint(ctx, "planet-3", "missing")

		assert.ErrorIs(t, err, domain.ErrPointNotFound)
	})
}
