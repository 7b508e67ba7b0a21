package game

import (
	"context"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

func (s *service) Ships() []domain.Ship {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Ship, len(s.state.Ships))
	copy(out, s.state.Ships)
	return out
}

func (s *service) OwnedShips() []domain.Ship {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Ship, len(s.state.OwnedShips))
	copy(out, s.state.OwnedShips)
	return out
}

func (s *service) ActiveShip() *domain.Ship {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.ActiveShip == nil {
		return nil
	}
	ship := *s.state.ActiveShip
	return &ship
}

// PurchaseShip buys a catalog ship into the owned set. The default ship is
// implicitly owned and cannot be bought.
func (s *service) PurchaseShip(ctx context.Context, shipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.requireUserLocked()
	if err != nil {
		return err
	}

	ship, ok := s.catalog.Ship(shipID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrShipNotFound, shipID)
	}
	if s.state.OwnsShip(shipID) {
		return fmt.Errorf("%w: %s", domain.ErrShipAlreadyOwned, shipID)
	}

	balance := s.state.Balance(ship.Currency)
	if balance < ship.Price {
		return fmt.Errorf("%w: need %d %s, have %d",
			domain.ErrInsufficientFunds, ship.Price, ship.Currency.Display(), balance)
	}

	if ship.Price > 0 {
		if err := s.remote.UpdateCurrency(ctx, user.ID, ship.Currency, -ship.Price, "ship:"+shipID); err != nil {
			return err
		}
		s.state.SetBalance(ship.Currency, balance-ship.Price)
	}

	now := s.clock.Now()
	ship.OwnedAt = &now
	s.state.OwnedShips = append(s.state.OwnedShips, ship)

	s.notifyLocked(domain.NotificationSuccess, "Nave adquirida",
		fmt.Sprintf("%s agora faz parte da sua frota.", ship.Name))
	logger.FromContext(ctx).Info("Ship purchased",
		"user_id", user.ID, "ship_id", shipID, "price", ship.Price)
	s.publish(ctx, event.NewShipPurchasedEvent(user.ID, shipID, ship.Price))
	s.saveLocked(ctx)
	return nil
}

// SwitchActiveShip activates a ship the user owns (or the default).
func (s *service) SwitchActiveShip(ctx context.Context, shipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireUserLocked(); err != nil {
		return err
	}

	ship, ok := s.catalog.Ship(shipID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrShipNotFound, shipID)
	}
	if !s.state.OwnsShip(shipID) {
		return fmt.Errorf("%w: %s", domain.ErrShipNotOwned, shipID)
	}

	// Prefer the owned copy so OwnedAt survives on the active pointer.
	for i := range s.state.OwnedShips {
		if s.state.OwnedShips[i].ID == shipID {
			ship = s.state.OwnedShips[i]
			break
		}
	}

	s.state.ActiveShip = &ship
	s.saveLocked(ctx)
	return nil
}
