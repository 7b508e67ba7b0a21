package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

func (s *service) Inventory() []domain.InventoryStack {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.InventoryStack, len(s.state.Inventory.Stacks))
	copy(out, s.state.Inventory.Stacks)
	return out
}

// AddToInventory registers the stack remotely and merges it into local
// inventory. Fish are local-only; their item instances exist nowhere else.
func (s *service) AddToInventory(ctx context.Context, item domain.Item, quantity int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return "", err
	}
	if quantity <= 0 {
		return "", fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}

	inventoryID, err := s.addStackLocked(ctx, user.ID, item, quantity)
	if err != nil {
		return "", err
	}
	s.saveLocked(ctx)
	return inventoryID, nil
}

// addStackLocked is the shared add path used by purchases, redeems and
// direct adds. Non-fish items confirm with the remote service first; the
// returned id names the stack the items landed in.
func (s *service) addStackLocked(ctx context.Context, userID string, item domain.Item, quantity int) (string, error) {
	remoteID := ""
	if item.Type != domain.ItemTypeFish {
		id, err := s.remote.AddInventoryItem(ctx, userID, item, quantity)
		if err != nil {
			return "", err
		}
		remoteID = id
	}

	// Fish carry per-instance catch data, so they never merge.
	if item.Type != domain.ItemTypeFish {
		if i := s.state.Inventory.FindUnequippedBySlug(item.Slug); i >= 0 {
			s.state.Inventory.Stacks[i].Quantity += quantity
			return s.state.Inventory.Stacks[i].InventoryID, nil
		}
	}

	if remoteID == "" {
		remoteID = newID()
	}
	s.state.Inventory.Stacks = append(s.state.Inventory.Stacks, domain.InventoryStack{
		InventoryID: remoteID,
		Item:        item,
		Quantity:    quantity,
		FishData:    item.FishData,
	})
	return remoteID, nil
}

// RemoveFromInventory decrements a stack, deleting it at zero. Unknown ids
// and remote rejections both report false without changing state.
func (s *service) RemoveFromInventory(ctx context.Context, inventoryID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return false
	}
	if quantity <= 0 {
		return false
	}

	i := s.state.Inventory.FindStack(inventoryID)
	if i < 0 {
		return false
	}
	stack := &s.state.Inventory.Stacks[i]

	if stack.Item.Type != domain.ItemTypeFish {
		if err := s.remote.RemoveInventoryItem(ctx, user.ID, inventoryID, quantity); err != nil {
			logger.FromContext(ctx).Warn("Remote inventory removal rejected",
				"inventory_id", inventoryID, "error", err)
			return false
		}
	}

	if quantity >= stack.Quantity {
		s.state.Inventory.RemoveAt(i)
	} else {
		stack.Quantity -= quantity
	}
	s.saveLocked(ctx)
	return true
}
