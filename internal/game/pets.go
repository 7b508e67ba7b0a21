package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

func (s *service) Pets() []domain.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Pet, len(s.state.Pets))
	copy(out, s.state.Pets)
	return out
}

func (s *service) ActivePet() *domain.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActivePet == nil {
		return nil
	}
	pet := *s.state.ActivePet
	return &pet
}

// CreatePet registers a new pet remotely and appends it locally. The first
// pet of a session becomes active.
func (s *service) CreatePet(ctx context.Context, pet domain.Pet) (*domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return nil, err
	}
	if pet.Name == "" || pet.Species == "" {
		return nil, fmt.Errorf("%w: pet needs a name and a species", domain.ErrInvalidInput)
	}

	pet.OwnerID = user.ID
	now := s.clock.Now()
	pet.CreatedAt = now
	pet.UpdatedAt = now
	if pet.Level == 0 {
		pet.Level = 1
	}

	id, err := s.remote.CreatePet(ctx, &pet)
	if err != nil {
		return nil, err
	}
	if id != "" {
		pet.ID = id
	} else if pet.ID == "" {
		pet.ID = newID()
	}

	if len(s.state.Pets) == 0 {
		pet.IsActive = true
	}
	s.state.Pets = append(s.state.Pets, pet)
	if pet.IsActive {
		copied := pet
		s.state.ActivePet = &copied
	}

	logger.FromContext(ctx).Info("Pet created",
		"user_id", user.ID, "pet_id", pet.ID, "species", pet.Species)
	s.saveLocked(ctx)
	return &pet, nil
}

// UpdatePetStats applies named deltas to a pet after remote confirmation.
// Bounded attributes clamp to their range.
func (s *service) UpdatePetStats(ctx context.Context, petID string, deltas map[string]int) (*domain.Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireUserLocked(); err != nil {
		return nil, err
	}

	i := s.findPetLocked(petID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
	}

	pet := s.state.Pets[i]
	for stat, value := range deltas {
		if !pet.ApplyEffect(stat, value) {
			return nil, fmt.Errorf("%w: unknown stat %q", domain.ErrInvalidInput, stat)
		}
	}
	pet.UpdatedAt = s.clock.Now()

	if err := s.remote.UpdatePetStats(ctx, &pet); err != nil {
		return nil, err
	}

	s.state.Pets[i] = pet
	s.syncActivePetLocked(pet)
	s.saveLocked(ctx)
	return &pet, nil
}

// SetActivePet marks one pet active and all others inactive.
func (s *service) SetActivePet(ctx context.Context, petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireUserLocked(); err != nil {
		return err
	}

	found := -1
	for i := range s.state.Pets {
		if s.state.Pets[i].ID == petID {
			found = i
			break
		}
	}
	if found < 0 {
		return fmt.Errorf("%w: %s", domain.ErrPetNotFound, petID)
	}

	for i := range s.state.Pets {
		s.state.Pets[i].IsActive = i == found
	}
	copied := s.state.Pets[found]
	s.state.ActivePet = &copied
	s.saveLocked(ctx)
	return nil
}
