package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

func TestHatching(t *testing.T) {
	ctx := context.Background()

	t.Run("start records owner and start time", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())

		egg, err := h.svc.StartHatching(ctx, "Ovo Alpha")

		require.NoError(t, err)
		assert.Equal(t, "user-1", egg.UserID)
		assert.Equal(t, h.clock.Now(), egg.StartTime)
		assert.Equal(t, domain.HatchDuration, h.svc.HatchingTimeRemaining())
	})

	t.Run("only one egg incubates at a time", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		_, err := h.svc.StartHatching(ctx, "Ovo Alpha")
		require.NoError(t, err)

		_, err = h.svc.StartHatching(ctx, "Ovo Beta")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("time remaining counts down to zero", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		_, err := h.svc.StartHatching(ctx, "Ovo Alpha")
		require.NoError(t, err)

		h.clock.Advance(time.Minute)
		assert.Equal(t, 2*time.Minute, h.svc.HatchingTimeRemaining())

		h.clock.Advance(5 * time.Minute)
		assert.Zero(t, h.svc.HatchingTimeRemaining())
	})

	t.Run("clear removes the egg", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		_, err := h.svc.StartHatching(ctx, "Ovo Alpha")
		require.NoError(t, err)

		h.svc.ClearHatching(ctx)

		assert.Nil(t, h.svc.HatchingEgg())
		assert.Zero(t, h.svc.HatchingTimeRemaining())
	})

	t.Run("no egg without a user", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.svc.StartHatching(ctx, "Ovo Alpha")

		assert.ErrorIs(t, err, domain.ErrNotLoggedIn)
		assert.Nil(t, h.svc.HatchingEgg())
	})
}
