package game

import (
	"context"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

func (s *service) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Notification, len(s.state.Notifications))
	copy(out, s.state.Notifications)
	return out
}

func (s *service) AddNotification(ctx context.Context, typ domain.NotificationType, title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifyLocked(typ, title, message)
	s.saveLocked(ctx)
}

func (s *service) MarkNotificationRead(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].IsRead = true
			s.saveLocked(ctx)
			return true
		}
	}
	return false
}

func (s *service) MarkAllNotificationsRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notifications {
		s.state.Notifications[i].IsRead = true
	}
	s.saveLocked(ctx)
}

func (s *service) DeleteNotification(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications = append(s.state.Notifications[:i], s.state.Notifications[i+1:]...)
			s.saveLocked(ctx)
			return true
		}
	}
	return false
}

func (s *service) ClearNotifications(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Notifications = []domain.Notification{}
	s.saveLocked(ctx)
}
