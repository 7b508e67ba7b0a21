package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// UseItem applies a stack's item effects to a pet. Bounded attributes clamp
// to their range, unbounded ones accumulate. An item with no effect that
// maps to a known attribute fails without consuming anything; success
// consumes exactly one unit.
func (s *service) UseItem(ctx context.Context, inventoryID, petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return err
	}

	i := s.state.Inventory.FindStack(inventoryID)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrStackNotFound, inventoryID)
	}
	stack := &s.state.Inventory.Stacks[i]

	petIdx := s.findPetLocked(petID)
	if petIdx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
	}

	// Effects apply to a scratch copy; nothing commits until the remote
	// confirms the new stats.
	pet := s.state.Pets[petIdx]
	applied := false
	for stat, value := range stack.Item.Effects {
		if pet.ApplyEffect(stat, value) {
			applied = true
		}
	}
	if !applied {
		return fmt.Errorf("%w: %s on pet %s", domain.ErrNoApplicableEffect, stack.Item.Slug, pet.ID)
	}
	pet.UpdatedAt = s.clock.Now()

	if err := s.remote.UpdatePetStats(ctx, &pet); err != nil {
		return err
	}

	s.state.Pets[petIdx] = pet
	s.syncActivePetLocked(pet)

	item := stack.Item
	if stack.Quantity <= 1 {
		s.state.Inventory.RemoveAt(i)
	} else {
		stack.Quantity--
	}

	s.notifyLocked(domain.NotificationSuccess, "Item usado",
		fmt.Sprintf("%s usado em %s.", item.Name, pet.Name))
	logger.FromContext(ctx).Info("Item used",
		"user_id", user.ID, "item_slug", item.Slug, "pet_id", pet.ID)
	s.publish(ctx, event.NewItemUsedEvent(user.ID, item.Slug, pet.ID))
	s.saveLocked(ctx)
	return nil
}

// findPetLocked resolves a pet index by id; an empty id means the active pet.
func (s *service) findPetLocked(petID string) int {
	if petID == "" {
		if s.state.ActivePet == nil {
			return -1
		}
		petID = s.state.ActivePet.ID
	}
	for i := range s.state.Pets {
		if s.state.Pets[i].ID == petID {
			return i
		}
	}
	return -1
}

// syncActivePetLocked refreshes the active pet copy after a mutation.
func (s *service) syncActivePetLocked(pet domain.Pet) {
	if s.state.ActivePet != nil && s.state.ActivePet.ID == pet.ID {
		copied := pet
		s.state.ActivePet = &copied
	}
}
