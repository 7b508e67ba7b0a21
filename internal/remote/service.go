// Package remote is the boundary to the authoritative game service. Wallet
// mutations and inventory writes are confirmed remotely before local state
// changes; exploration overrides are mirrored best-effort.
package remote

import (
	"context"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

// Service is the remote confirmation gateway.
type Service interface {
	// FetchUserData loads everything the game service knows about a user.
	FetchUserData(ctx context.Context, userID string) (*domain.UserData, error)

	// UpdateCurrency asks the game service to apply a signed delta to the
	// user's wallet. The caller applies the local floor-at-zero after
	// confirmation.
	UpdateCurrency(ctx context.Context, userID string, kind domain.CurrencyKind, delta int, reason string) error

	// AddInventoryItem registers a new stack remotely and returns its
	// inventory id.
	AddInventoryItem(ctx context.Context, userID string, item domain.Item, quantity int) (string, error)

	// RemoveInventoryItem decrements or deletes a stack remotely.
	RemoveInventoryItem(ctx context.Context, userID, inventoryID string, quantity int) error

	// CreatePet registers a new pet and returns its id.
	CreatePet(ctx context.Context, pet *domain.Pet) (string, error)

	// UpdatePetStats pushes a pet's current stats.
	UpdatePetStats(ctx context.Context, pet *domain.Pet) error

	// CollectCollectible records a collectible pickup.
	CollectCollectible(ctx context.Context, userID, collectibleID string) error

	// SearchPlayers looks up players by a normalized query.
	SearchPlayers(ctx context.Context, query string) ([]domain.PlayerProfile, error)

	// GetPlayerProfile fetches one player's public profile.
	GetPlayerProfile(ctx context.Context, userID string) (*domain.PlayerProfile, error)

	// SaveExplorationPoints mirrors a planet's point override.
	SaveExplorationPoints(ctx context.Context, planetID string, points []domain.ExplorationPoint) error
}
