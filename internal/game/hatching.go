package game

import (
	"context"
	"fmt"
	"time"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// StartHatching begins incubating an egg for the session user. Only one egg
// incubates at a time.
func (s *service) StartHatching(ctx context.Context, eggType string) (*domain.HatchingEgg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return nil, err
	}
	if eggType == "" {
		return nil, fmt.Errorf("%w: empty egg type", domain.ErrInvalidInput)
	}
	if s.state.HatchingEgg != nil && s.state.HatchingEgg.UserID == user.ID {
		return nil, fmt.Errorf("%w: an egg is already incubating", domain.ErrInvalidInput)
	}

	egg := &domain.HatchingEgg{
		ID:        newID(),
		UserID:    user.ID,
		EggType:   eggType,
		StartTime: s.clock.Now(),
	}
	s.state.HatchingEgg = egg

	logger.FromContext(ctx).Info("Hatching started",
		"user_id", user.ID, "egg_id", egg.ID, "egg_type", eggType)
	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.EggHatchingStarted,
		Payload: map[string]interface{}{"user_id": user.ID, "egg_type": eggType},
	})
	s.saveLocked(ctx)

	copied := *egg
	return &copied, nil
}

// HatchingEgg returns the session user's incubating egg, or nil. Eggs from
// other users are invisible.
func (s *service) HatchingEgg() *domain.HatchingEgg {
	s.mu.Lock()
	defer s.mu.Unlock()

	egg := s.state.HatchingEgg
	if egg == nil || s.state.User == nil || egg.UserID != s.state.User.ID {
		return nil
	}
	copied := *egg
	return &copied
}

// HatchingTimeRemaining reports how long until the egg is ready. Zero means
// no egg or already hatched.
func (s *service) HatchingTimeRemaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	egg := s.state.HatchingEgg
	if egg == nil || s.state.User == nil || egg.UserID != s.state.User.ID {
		return 0
	}
	remaining := s.clock.Until(egg.ReadyAt())
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (s *service) ClearHatching(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.HatchingEgg = nil
	s.saveLocked(ctx)
}
