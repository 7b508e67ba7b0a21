package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

func TestNotifications(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())

		h.svc.AddNotification(ctx, domain.NotificationInfo, "first", "")
		h.svc.AddNotification(ctx, domain.NotificationInfo, "second", "")

		notifications := h.svc.Notifications()
		require.Len(t, notifications, 2)
		assert.Equal(t, "second", notifications[0].Title)
		assert.Equal(t, "first", notifications[1].Title)
	})

	t.Run("cap evicts the oldest beyond 50", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())

		for i := 0; i < 51; i++ {
			h.svc.AddNotification(ctx, domain.NotificationInfo, fmt.Sprintf("n%d", i), "")
		}

		notifications := h.svc.Notifications()
		require.Len(t, notifications, domain.MaxNotifications)
		assert.Equal(t, "n50", notifications[0].Title)
		assert.Equal(t, "n1", notifications[49].Title, "n0 evicted")
	})

	t.Run("mark read and mark all read", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.svc.AddNotification(ctx, domain.NotificationWarning, "a", "")
		h.svc.AddNotification(ctx, domain.NotificationWarning, "b", "")
		id := h.svc.Notifications()[0].ID

		assert.True(t, h.svc.MarkNotificationRead(ctx, id))
		assert.False(t, h.svc.MarkNotificationRead(ctx, "missing"))

		h.svc.MarkAllNotificationsRead(ctx)
		for _, n := range h.svc.Notifications() {
			assert.True(t, n.IsRead)
		}
	})

	t.Run("delete and clear", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.svc.AddNotification(ctx, domain.NotificationError, "a", "")
		h.svc.AddNotification(ctx, domain.NotificationError, "b", "")
		id := h.svc.Notifications()[0].ID

		assert.True(t, h.svc.DeleteNotification(ctx, id))
		assert.False(t, h.svc.DeleteNotification(ctx, id))
		assert.Len(t, h.svc.Notifications(), 1)

		h.svc.ClearNotifications(ctx)
		assert.Empty(t, h.svc.Notifications())
	})
}
