package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

// createActivePet registers a pet at the given level through the engine.
func createActivePet(t *testing.T, h *harness, level int) {
	t.Helper()
	h.remote.On("CreatePet", mock.Anything, mock.Anything).Return("pet-1", nil).Once()
	_, err := h.svc.CreatePet(context.Background(), domain.Pet{
		Name:    "Zug",
		Species: "Xenodino",
		Level:   level,
	})
	require.NoError(t, err)
}

func TestPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("successful purchase debits, stocks down and adds inventory", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 500, 0)
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, -50, "purchase:health-potion-1").Return(nil).Once()
		h.remote.On("AddInventoryItem", mock.Anything, "user-1", mock.Anything, 1).Return("inv-1", nil).Once()

		result, err := h.svc.Purchase(ctx, "woodland-general", "si1", 1)

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 50, result.TotalCost)
		assert.Equal(t, 450, result.NewBalance)
		assert.Equal(t, 450, h.svc.Balance(domain.CurrencyXenocoins))

		store, ok := h.svc.StoreByID("woodland-general")
		require.True(t, ok)
		assert.Equal(t, 24, store.FindItem("si1").Stock)

		inv := h.svc.Inventory()
		require.Len(t, inv, 1)
		assert.Equal(t, "inv-1", inv[0].InventoryID)
		assert.Equal(t, "health-potion-1", inv[0].Item.Slug)
		assert.Equal(t, 1, inv[0].Quantity)

		notifications := h.svc.Notifications()
		require.NotEmpty(t, notifications)
		assert.Equal(t, domain.NotificationSuccess, notifications[0].Type)
		h.remote.AssertExpectations(t)
	})

	t.Run("repeat purchases merge into one stack", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 500, 0)
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, -50, "purchase:health-potion-1").Return(nil).Twice()
		h.remote.On("AddInventoryItem", mock.Anything, "user-1", mock.Anything, 1).Return("inv-1", nil).Twice()

		_, err := h.svc.Purchase(ctx, "woodland-general", "si1", 1)
		require.NoError(t, err)
		_, err = h.svc.Purchase(ctx, "woodland-general", "si1", 1)
		require.NoError(t, err)

		inv := h.svc.Inventory()
		require.Len(t, inv, 1)
		assert.Equal(t, 2, inv[0].Quantity)
	})

	t.Run("insufficient funds blocks before any remote call", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 30, 0)

		_, err := h.svc.Purchase(ctx, "woodland-general", "si1", 1)

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, 30, h.svc.Balance(domain.CurrencyXenocoins))
	})

	t.Run("unknown store and entry are distinct failures", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())

		_, err := h.svc.Purchase(ctx, "nowhere", "si1", 1)
		assert.ErrorIs(t, err, domain.ErrStoreNotFound)

		_, err = h.svc.Purchase(ctx, "woodland-general", "si99", 1)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("quantity above stock fails", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 5000, 0)

		_, err := h.svc.Purchase(ctx, "woodland-general", "si1", 26)

		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	})

	t.Run("level requirement gates the entry", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 500, 0)

		_, err := h.svc.Purchase(ctx, "oasis-trading", "si5", 1)

		assert.ErrorIs(t, err, domain.ErrRequirementUnmet)
	})

	t.Run("level requirement passes with a high enough active pet", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 500, 0)
		createActivePet(t, h, 5)
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, -200, "purchase:desert-crystal-1").Return(nil).Once()
		h.remote.On("AddInventoryItem", mock.Anything, "user-1", mock.Anything, 1).Return("inv-2", nil).Once()

		result, err := h.svc.Purchase(ctx, "oasis-trading", "si5", 1)

		require.NoError(t, err)
		assert.Equal(t, 300, result.NewBalance)
	})

	t.Run("inventory add failure refunds the debit", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 500, 0)
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, -50, "purchase:health-potion-1").Return(nil).Once()
		h.remote.On("AddInventoryItem", mock.Anything, "user-1", mock.Anything, 1).Return("", domain.ErrExternalFailure).Once()
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, 50, "refund:health-potion-1").Return(nil).Once()

		_, err := h.svc.Purchase(ctx, "woodland-general", "si1", 1)

		assert.ErrorIs(t, err, domain.ErrExternalFailure)
		assert.Equal(t, 500, h.svc.Balance(domain.CurrencyXenocoins), "debit must be compensated")
		assert.Empty(t, h.svc.Inventory())

		store, _ := h.svc.StoreByID("woodland-general")
		assert.Equal(t, 25, store.FindItem("si1").Stock, "stock only moves on success")
		h.remote.AssertExpectations(t)
	})

	t.Run("remote debit rejection aborts cleanly", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 500, 0)
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, -50, "purchase:health-potion-1").
			Return(domain.ErrExternalFailure).Once()

		_, err := h.svc.Purchase(ctx, "woodland-general", "si1", 1)

		assert.ErrorIs(t, err, domain.ErrExternalFailure)
		assert.Equal(t, 500, h.svc.Balance(domain.CurrencyXenocoins))
		assert.Empty(t, h.svc.Inventory())
	})

	t.Run("cash entries charge the cash wallet", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 0, 10)
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyCash, -5, "purchase:premium-elixir-1").Return(nil).Once()
		h.remote.On("AddInventoryItem", mock.Anything, "user-1", mock.Anything, 1).Return("inv-3", nil).Once()

		result, err := h.svc.Purchase(ctx, "mountain-armory", "si8", 1)

		require.NoError(t, err)
		assert.Equal(t, domain.CurrencyCash, result.Currency)
		assert.Equal(t, 5, h.svc.Balance(domain.CurrencyCash))
	})
}

func TestRestockStores(t *testing.T) {
	ctx := context.Background()

	t.Run("raises stock by rate capped at max", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		h.fund(t, 500, 0)
		h.remote.On("UpdateCurrency", mock.Anything, "user-1", domain.CurrencyXenocoins, -50, "purchase:health-potion-1").Return(nil).Once()
		h.remote.On("AddInventoryItem", mock.Anything, "user-1", mock.Anything, 1).Return("inv-1", nil).Once()
		_, err := h.svc.Purchase(ctx, "woodland-general", "si1", 1)
		require.NoError(t, err)

		restocked := h.svc.RestockStores(ctx)

		assert.Greater(t, restocked, 0)
		store, _ := h.svc.StoreByID("woodland-general")
		// 24 + restock rate 5.
		assert.Equal(t, 29, store.FindItem("si1").Stock)
	})

	t.Run("never exceeds max stock", func(t *testing.T) {
		h := newHarness(t)

		h.svc.RestockStores(ctx)
		h.svc.RestockStores(ctx)
		h.svc.RestockStores(ctx)

		for _, store := range h.svc.Stores() {
			for _, entry := range store.Inventory {
				assert.LessOrEqual(t, entry.Stock, entry.MaxStock)
			}
		}
	})
}
