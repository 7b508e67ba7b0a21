package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

func (s *service) Balance(kind domain.CurrencyKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Balance(kind)
}

// UpdateCurrency applies a signed wallet delta. The remote service confirms
// the mutation first; the local balance then floors at zero. Callers that
// need strict sufficiency (purchases) pre-check before calling.
func (s *service) UpdateCurrency(ctx context.Context, kind domain.CurrencyKind, delta int, reason string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return 0, err
	}
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: unknown currency %q", domain.ErrInvalidInput, kind)
	}

	if err := s.remote.UpdateCurrency(ctx, user.ID, kind, delta, reason); err != nil {
		return s.state.Balance(kind), err
	}

	s.state.SetBalance(kind, s.state.Balance(kind)+delta)
	newBalance := s.state.Balance(kind)

	logger.FromContext(ctx).Info("Currency updated",
		"user_id", user.ID, "currency", kind, "delta", delta, "balance", newBalance, "reason", reason)
	s.publish(ctx, event.NewCurrencyChangedEvent(user.ID, string(kind), delta, newBalance))
	s.saveLocked(ctx)
	return newBalance, nil
}
