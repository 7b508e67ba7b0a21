package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

func (s *service) Stores() []domain.Store {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Store, 0, len(s.stores))
	for _, def := range s.catalog.Stores() {
		if store, ok := s.stores[def.ID]; ok {
			out = append(out, copyStore(store))
		}
	}
	return out
}

func (s *service) StoreByID(storeID string) (domain.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.stores[storeID]
	if !ok {
		return domain.Store{}, false
	}
	return copyStore(store), true
}

// Purchase runs the guarded store transaction. Every check happens before
// any money moves; after the remote debit succeeds, an inventory add failure
// triggers a compensating credit so the caller observes all-or-nothing.
func (s *service) Purchase(ctx context.Context, storeID, storeItemID string, quantity int) (*domain.PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	store, ok := s.stores[storeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreNotFound, storeID)
	}
	if !store.IsOpen {
		return nil, fmt.Errorf("%w: %s is closed", domain.ErrStoreNotFound, storeID)
	}

	entry := store.FindItem(storeItemID)
	if entry == nil {
		return nil, fmt.Errorf("%w: %s in store %s", domain.ErrItemNotFound, storeItemID, storeID)
	}
	if entry.Stock < quantity {
		return nil, fmt.Errorf("%w: %d left of %s", domain.ErrInsufficientStock, entry.Stock, entry.ItemSlug)
	}

	if err := s.checkRequirementsLocked(entry.Requirements); err != nil {
		return nil, err
	}

	item, ok := s.catalog.Item(entry.ItemSlug)
	if !ok {
		return nil, fmt.Errorf("%w: catalog has no %s", domain.ErrItemNotFound, entry.ItemSlug)
	}

	totalCost := entry.CurrentPrice * quantity
	balance := s.state.Balance(entry.Currency)
	if balance < totalCost {
		return nil, fmt.Errorf("%w: need %d %s, have %d",
			domain.ErrInsufficientFunds, totalCost, entry.Currency.Display(), balance)
	}

	reason := "purchase:" + entry.ItemSlug
	if err := s.remote.UpdateCurrency(ctx, user.ID, entry.Currency, -totalCost, reason); err != nil {
		return nil, err
	}
	s.state.SetBalance(entry.Currency, balance-totalCost)

	if _, err := s.addStackLocked(ctx, user.ID, item, quantity); err != nil {
		// Compensating credit. The remote already debited, so refund both
		// sides before surfacing the failure.
		if creditErr := s.remote.UpdateCurrency(ctx, user.ID, entry.Currency, totalCost, "refund:"+entry.ItemSlug); creditErr != nil {
			logger.FromContext(ctx).Error("Compensating credit failed",
				"user_id", user.ID, "amount", totalCost, "error", creditErr)
		}
		s.state.SetBalance(entry.Currency, s.state.Balance(entry.Currency)+totalCost)
		return nil, err
	}

	entry.Stock -= quantity

	s.notifyLocked(domain.NotificationSuccess, "Compra realizada",
		fmt.Sprintf("Você comprou %dx %s por %d %s.", quantity, item.Name, totalCost, entry.Currency.Display()))

	logger.FromContext(ctx).Info("Purchase completed",
		"user_id", user.ID, "store_id", storeID, "item_slug", item.Slug,
		"quantity", quantity, "total_cost", totalCost, "currency", entry.Currency)
	s.publish(ctx, event.NewPurchaseEvent(user.ID, storeID, item.Slug, quantity, totalCost, string(entry.Currency)))
	s.saveLocked(ctx)

	return &domain.PurchaseResult{
		Success:    true,
		Message:    fmt.Sprintf("%s comprado com sucesso!", item.Name),
		Item:       &item,
		TotalCost:  totalCost,
		Currency:   entry.Currency,
		NewBalance: s.state.Balance(entry.Currency),
	}, nil
}

// checkRequirementsLocked evaluates store entry gates against player state.
func (s *service) checkRequirementsLocked(reqs []domain.Requirement) error {
	for _, req := range reqs {
		switch req.Type {
		case "level":
			level := 0
			if s.state.ActivePet != nil {
				level = s.state.ActivePet.Level
			}
			needed := asInt(req.Value)
			if level < needed {
				return fmt.Errorf("%w: %s", domain.ErrRequirementUnmet, req.Description)
			}
		case "achievement":
			name, _ := req.Value.(string)
			if !s.hasAchievementLocked(name) {
				return fmt.Errorf("%w: %s", domain.ErrRequirementUnmet, req.Description)
			}
		default:
			// Unknown requirement types fail closed.
			return fmt.Errorf("%w: %s", domain.ErrRequirementUnmet, req.Description)
		}
	}
	return nil
}

func (s *service) hasAchievementLocked(name string) bool {
	for i := range s.state.Achievements {
		a := &s.state.Achievements[i]
		if a.IsUnlocked && (a.Name == name || a.ID == name) {
			return true
		}
	}
	return false
}

// RestockStores raises every limited entry by its restock rate, capped at
// max stock. Returns the number of entries that gained stock.
func (s *service) RestockStores(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	restocked := 0
	for _, store := range s.stores {
		for i := range store.Inventory {
			entry := &store.Inventory[i]
			if entry.RestockRate <= 0 || entry.Stock >= entry.MaxStock {
				continue
			}
			entry.Stock += entry.RestockRate
			if entry.Stock > entry.MaxStock {
				entry.Stock = entry.MaxStock
			}
			entry.LastRestocked = now
			restocked++
		}
	}

	if restocked > 0 {
		logger.FromContext(ctx).Info("Stores restocked", "entries", restocked)
	}
	return restocked
}

func copyStore(store *domain.Store) domain.Store {
	out := *store
	out.Inventory = make([]domain.StoreItem, len(store.Inventory))
	copy(out.Inventory, store.Inventory)
	return out
}

// asInt tolerates JSON-decoded requirement values, which arrive as float64.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
