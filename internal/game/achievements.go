package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

func (s *service) Achievements() []domain.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Achievement, len(s.state.Achievements))
	copy(out, s.state.Achievements)
	return out
}

func (s *service) Collectibles() []domain.Collectible {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Collectible, len(s.state.Collectibles))
	copy(out, s.state.Collectibles)
	return out
}

// CollectCollectible records a collectible pickup, confirmed remotely. The
// collectible's account points credit the user's score.
func (s *service) CollectCollectible(ctx context.Context, collectible domain.Collectible) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return err
	}
	if collectible.ID == "" {
		return fmt.Errorf("%w: collectible without id", domain.ErrInvalidInput)
	}
	for i := range s.state.Collectibles {
		if s.state.Collectibles[i].ID == collectible.ID && s.state.Collectibles[i].IsCollected {
			// Already collected; nothing to do.
			return nil
		}
	}

	if err := s.remote.CollectCollectible(ctx, user.ID, collectible.ID); err != nil {
		return err
	}

	now := s.clock.Now()
	collectible.IsCollected = true
	collectible.CollectedAt = &now

	updated := false
	for i := range s.state.Collectibles {
		if s.state.Collectibles[i].ID == collectible.ID {
			s.state.Collectibles[i] = collectible
			updated = true
			break
		}
	}
	if !updated {
		s.state.Collectibles = append(s.state.Collectibles, collectible)
	}
	user.AccountScore += collectible.AccountPoints

	logger.FromContext(ctx).Info("Collectible collected",
		"user_id", user.ID, "collectible_id", collectible.ID, "points", collectible.AccountPoints)
	s.saveLocked(ctx)
	return nil
}

// CollectiblePoints sums account points over collected entries.
func (s *service) CollectiblePoints() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for i := range s.state.Collectibles {
		if s.state.Collectibles[i].IsCollected {
			total += s.state.Collectibles[i].AccountPoints
		}
	}
	return total
}
