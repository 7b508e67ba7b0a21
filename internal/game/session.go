package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// SetUser replaces the session owner. A nil user logs out and wipes every
// per-user field; switching to a different user clears any in-progress
// hatching egg left by the previous one.
func (s *service) SetUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		logger.FromContext(ctx).Info("User logged out")
		s.state = domain.NewGameState()
		s.resetStoresLocked()
		return nil
	}

	if s.state.User != nil && s.state.User.ID != user.ID {
		s.state.HatchingEgg = nil
	}
	s.state.User = user
	s.seedCatalogStateLocked()
	s.saveLocked(ctx)
	return nil
}

func (s *service) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	return &user
}

// InitializeNewUser builds a fresh session for a first login: empty wallet
// and inventory, the catalog ship roster with the default ship active, and
// the built-in redeem codes.
func (s *service) InitializeNewUser(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.CreatedAt = s.clock.Now()
	user.LastLogin = s.clock.Now()

	s.state = domain.NewGameState()
	s.state.User = &user
	s.seedCatalogStateLocked()
	s.resetStoresLocked()

	s.notifyLocked(domain.NotificationInfo, "Bem-vindo!", "Sua jornada em XenoPets começa agora.")
	s.saveLocked(ctx)

	logger.FromContext(ctx).Info("New user initialized", "user_id", user.ID, "username", user.Username)
	return nil
}

// seedCatalogStateLocked fills catalog-derived state that every session
// carries: the ship roster, the active default ship and the seed codes.
func (s *service) seedCatalogStateLocked() {
	if len(s.state.Ships) == 0 {
		s.state.Ships = s.catalog.Ships()
	}
	if s.state.ActiveShip == nil {
		def := s.catalog.DefaultShip()
		s.state.ActiveShip = &def
	}
	if len(s.state.RedeemCodes) == 0 {
		s.state.RedeemCodes = s.catalog.SeedCodes()
	}
}

// LoadUserData pulls the authoritative user bundle from the remote service
// and replaces the matching local fields. A hatching egg belonging to a
// different user is discarded.
func (s *service) LoadUserData(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.remote.FetchUserData(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user data: %w", err)
	}

	s.state.Pets = data.Pets
	if s.state.Pets == nil {
		s.state.Pets = []domain.Pet{}
	}
	s.state.ActivePet = nil
	for i := range s.state.Pets {
		if s.state.Pets[i].IsActive {
			pet := s.state.Pets[i]
			s.state.ActivePet = &pet
			break
		}
	}

	if data.Inventory.Stacks != nil {
		s.state.Inventory = data.Inventory
	}
	s.state.SetBalance(domain.CurrencyXenocoins, data.Xenocoins)
	s.state.SetBalance(domain.CurrencyCash, data.Cash)
	if data.Notifications != nil {
		s.state.Notifications = data.Notifications
		if len(s.state.Notifications) > domain.MaxNotifications {
			s.state.Notifications = s.state.Notifications[:domain.MaxNotifications]
		}
	}
	if data.Achievements != nil {
		s.state.Achievements = data.Achievements
	}
	if data.Collectibles != nil {
		s.state.Collectibles = data.Collectibles
	}

	s.state.HatchingEgg = data.HatchingEgg
	if s.state.HatchingEgg != nil && s.state.HatchingEgg.UserID != userID {
		logger.FromContext(ctx).Warn("Discarding hatching egg from another user",
			"egg_user_id", s.state.HatchingEgg.UserID, "user_id", userID)
		s.state.HatchingEgg = nil
	}

	s.saveLocked(ctx)
	return nil
}

// Restore replaces state with the persisted snapshot. Returns false when no
// snapshot exists.
func (s *service) Restore(ctx context.Context, sessionUserID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gateway == nil {
		return false, nil
	}
	state, err := s.gateway.Load(ctx, sessionUserID)
	if err != nil {
		return false, err
	}
	if state == nil {
		return false, nil
	}

	s.state = state
	s.seedCatalogStateLocked()
	logger.FromContext(ctx).Info("Session restored", "user_id", sessionUserID)
	return true, nil
}

func (s *service) SaveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gateway == nil {
		return nil
	}
	return s.gateway.Save(ctx, s.state)
}
