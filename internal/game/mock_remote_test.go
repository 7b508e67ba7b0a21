package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

// mockRemote is a testify mock of the remote confirmation gateway.
type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) FetchUserData(ctx context.Context, userID string) (*domain.UserData, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*domain.UserData); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) UpdateCurrency(ctx context.Context, userID string, kind domain.CurrencyKind, delta int, reason string) error {
	args := m.Called(ctx, userID, kind, delta, reason)
	return args.Error(0)
}

func (m *mockRemote) AddInventoryItem(ctx context.Context, userID string, item domain.Item, quantity int) (string, error) {
	args := m.Called(ctx, userID, item, quantity)
	return args.String(0), args.Error(1)
}

func (m *mockRemote) RemoveInventoryItem(ctx context.Context, userID, inventoryID string, quantity int) error {
	args := m.Called(ctx, userID, inventoryID, quantity)
	return args.Error(0)
}

func (m *mockRemote) CreatePet(ctx context.Context, pet *domain.Pet) (string, error) {
	args := m.Called(ctx, pet)
	return args.String(0), args.Error(1)
}

func (m *mockRemote) UpdatePetStats(ctx context.Context, pet *domain.Pet) error {
	args := m.Called(ctx, pet)
	return args.Error(0)
}

func (m *mockRemote) CollectCollectible(ctx context.Context, userID, collectibleID string) error {
	args := m.Called(ctx, userID, collectibleID)
	return args.Error(0)
}

func (m *mockRemote) SearchPlayers(ctx context.Context, query string) ([]domain.PlayerProfile, error) {
	args := m.Called(ctx, query)
	if v, ok := args.Get(0).([]domain.PlayerProfile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) GetPlayerProfile(ctx context.Context, userID string) (*domain.PlayerProfile, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).(*domain.PlayerProfile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) SaveExplorationPoints(ctx context.Context, planetID string, points []domain.ExplorationPoint) error {
	args := m.Called(ctx, planetID, points)
	return args.Error(0)
}
