package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// RedeemCode validates and applies a reward code. Matching ignores case.
// Failures are distinct per guard; rewards apply best-effort per line, so a
// remote rejection on one line never blocks the others. The use record is
// written exactly once, after at least the guards pass.
func (s *service) RedeemCode(ctx context.Context, input string) (*RedeemResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return nil, err
	}

	var code *domain.RedeemCode
	for i := range s.state.RedeemCodes {
		c := &s.state.RedeemCodes[i]
		if c.IsActive && strings.EqualFold(c.Code, strings.TrimSpace(input)) {
			code = c
			break
		}
	}
	if code == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrCodeNotFound, input)
	}
	if code.UsedByUser(user.ID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCodeAlreadyUsed, code.Code)
	}
	if code.Exhausted() {
		return nil, fmt.Errorf("%w: %s", domain.ErrCodeMaxUses, code.Code)
	}
	if code.Expired(s.clock.Now()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCodeExpired, code.Code)
	}

	result := &RedeemResult{Code: code.Code}
	log := logger.FromContext(ctx)

	if code.Rewards.Xenocoins > 0 {
		s.applyCurrencyRewardLocked(ctx, user.ID, domain.CurrencyXenocoins, code.Rewards.Xenocoins, code.Code, result)
	}
	if code.Rewards.Cash > 0 {
		s.applyCurrencyRewardLocked(ctx, user.ID, domain.CurrencyCash, code.Rewards.Cash, code.Code, result)
	}
	if code.Rewards.AccountPoints > 0 {
		user.AccountScore += code.Rewards.AccountPoints
		result.Applied = append(result.Applied, fmt.Sprintf("%d pontos de conta", code.Rewards.AccountPoints))
	}
	for _, name := range code.Rewards.Collectibles {
		now := s.clock.Now()
		s.state.Collectibles = append(s.state.Collectibles, domain.Collectible{
			ID:          newID(),
			Name:        name,
			Type:        "egg",
			Rarity:      domain.RarityUnique,
			IsCollected: true,
			CollectedAt: &now,
		})
		result.Applied = append(result.Applied, name)
	}
	for _, slug := range code.Rewards.Items {
		item, ok := s.catalog.Item(slug)
		if !ok {
			log.Warn("Redeem code references unknown item", "code", code.Code, "item_slug", slug)
			result.Skipped = append(result.Skipped, slug)
			continue
		}
		if _, err := s.addStackLocked(ctx, user.ID, item, 1); err != nil {
			log.Warn("Redeem item reward failed", "code", code.Code, "item_slug", slug, "error", err)
			result.Skipped = append(result.Skipped, slug)
			continue
		}
		result.Applied = append(result.Applied, item.Name)
	}

	code.UsedBy = append(code.UsedBy, user.ID)
	code.CurrentUses++

	result.Message = fmt.Sprintf("Código %s resgatado! Recompensas: %s.",
		code.Code, strings.Join(result.Applied, ", "))
	s.notifyLocked(domain.NotificationSuccess, "Código resgatado", result.Message)

	log.Info("Code redeemed", "user_id", user.ID, "code", code.Code,
		"applied", len(result.Applied), "skipped", len(result.Skipped))
	s.publish(ctx, event.NewCodeRedeemedEvent(user.ID, code.Code))
	s.saveLocked(ctx)
	return result, nil
}

// applyCurrencyRewardLocked credits one currency line best-effort.
func (s *service) applyCurrencyRewardLocked(ctx context.Context, userID string, kind domain.CurrencyKind, amount int, code string, result *RedeemResult) {
	if err := s.remote.UpdateCurrency(ctx, userID, kind, amount, "redeem:"+code); err != nil {
		logger.FromContext(ctx).Warn("Redeem currency reward failed",
			"code", code, "currency", kind, "amount", amount, "error", err)
		result.Skipped = append(result.Skipped, fmt.Sprintf("%d %s", amount, kind.Display()))
		return
	}
	s.state.SetBalance(kind, s.state.Balance(kind)+amount)
	result.Applied = append(result.Applied, fmt.Sprintf("%d %s", amount, kind.Display()))
}

// CreateRedeemCode adds a code to the session pool. Admin only.
func (s *service) CreateRedeemCode(ctx context.Context, code domain.RedeemCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fmt.Errorf("%w: admin required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(code.Code) == "" {
		return fmt.Errorf("%w: empty code", domain.ErrInvalidInput)
	}
	for i := range s.state.RedeemCodes {
		if strings.EqualFold(s.state.RedeemCodes[i].Code, code.Code) {
			return fmt.Errorf("%w: code %s already exists", domain.ErrInvalidInput, code.Code)
		}
	}

	if code.ID == "" {
		code.ID = newID()
	}
	if code.UsedBy == nil {
		code.UsedBy = []string{}
	}
	code.CreatedBy = user.ID
	code.CreatedAt = s.clock.Now()
	code.IsActive = true
	s.state.RedeemCodes = append(s.state.RedeemCodes, code)
	s.saveLocked(ctx)
	return nil
}

// DeactivateRedeemCode disables a code without deleting its use record.
func (s *service) DeactivateRedeemCode(ctx context.Context, codeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return err
	}
	if !user.IsAdmin {
		return fmt.Errorf("%w: admin required", domain.ErrInvalidInput)
	}
	for i := range s.state.RedeemCodes {
		if s.state.RedeemCodes[i].ID == codeID {
			s.state.RedeemCodes[i].IsActive = false
			s.saveLocked(ctx)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrCodeNotFound, codeID)
}

func (s *service) RedeemCodes() []domain.RedeemCode {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.RedeemCode, len(s.state.RedeemCodes))
	copy(out, s.state.RedeemCodes)
	return out
}
