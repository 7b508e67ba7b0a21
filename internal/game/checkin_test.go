package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

func TestDailyCheckin(t *testing.T) {
	ctx := context.Background()

	expectReward := func(h *harness, amount int) {
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, amount, "checkin").Return(nil).Once()
	}

	t.Run("first check-in starts a streak", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		expectReward(h, CheckinBaseReward)

		result, err := h.svc.DailyCheckin(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Streak)
		assert.Equal(t, CheckinBaseReward, result.Reward)
		assert.False(t, result.WeeklyBonus)
		assert.Equal(t, CheckinBaseReward, h.svc.Balance(domain.CurrencyXenocoins))
	})

	t.Run("second check-in the same day fails", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		expectReward(h, CheckinBaseReward)
		_, err := h.svc.DailyCheckin(ctx)
		require.NoError(t, err)

		h.clock.Advance(2 * time.Hour)
		_, err = h.svc.DailyCheckin(ctx)

		assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
	})

	t.Run("consecutive days grow the streak", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		expectReward(h, CheckinBaseReward)
		_, err := h.svc.DailyCheckin(ctx)
		require.NoError(t, err)

		h.clock.Advance(24 * time.Hour)
		expectReward(h, CheckinBaseReward)
		result, err := h.svc.DailyCheckin(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Streak)
	})

	t.Run("a missed day resets the streak", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		expectReward(h, CheckinBaseReward)
		_, err := h.svc.DailyCheckin(ctx)
		require.NoError(t, err)

		h.clock.Advance(48 * time.Hour)
		expectReward(h, CheckinBaseReward)
		result, err := h.svc.DailyCheckin(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Streak)
	})

	t.Run("seventh day pays the weekly bonus", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())

		var result *CheckinResult
		var err error
		for day := 1; day <= 7; day++ {
			reward := CheckinBaseReward
			if day == 7 {
				reward += CheckinWeeklyBonus
			}
			expectReward(h, reward)
			result, err = h.svc.DailyCheckin(ctx)
			require.NoError(t, err)
			h.clock.Advance(24 * time.Hour)
		}

		assert.Equal(t, 7, result.Streak)
		assert.True(t, result.WeeklyBonus)
		assert.Equal(t, CheckinBaseReward+CheckinWeeklyBonus, result.Reward)
		h.remote.AssertExpectations(t)
	})

	t.Run("remote rejection grants nothing and keeps the record", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, CheckinBaseReward, "checkin").
			Return(domain.ErrExternalFailure).Once()

		_, err := h.svc.DailyCheckin(ctx)
		assert.ErrorIs(t, err, domain.ErrExternalFailure)
		assert.Zero(t, h.svc.Balance(domain.CurrencyXenocoins))

		// The failed attempt must not burn today's check-in.
		expectReward(h, CheckinBaseReward)
		result, err := h.svc.DailyCheckin(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Streak)
	})
}
