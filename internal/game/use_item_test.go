package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

// giveItem places a catalog item directly into inventory via the engine.
func giveItem(t *testing.T, h *harness, slug string, quantity int) string {
	t.Helper()
	catalogItem := findCatalogItem(t, h, slug)
	h.remote.On("AddInventoryItem", mock.Anything, mock.Anything, mock.Anything, quantity).Return("inv-"+slug, nil).Once()
	id, err := h.svc.AddToInventory(context.Background(), catalogItem, quantity)
	require.NoError(t, err)
	return id
}

func findCatalogItem(t *testing.T, h *harness, slug string) domain.Item {
	t.Helper()
	item, ok := h.catalog.Item(slug)
	require.True(t, ok, "catalog item %s", slug)
	return item
}

func TestUseItem(t *testing.T) {
	ctx := context.Background()

	t.Run("bounded stat clamps at the maximum", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		createActivePet(t, h, 1)

		// Health starts at 0; two potions at +5 reach the cap, a third
		// must not push past it.
		stackID := giveItem(t, h, "health-potion-1", 3)
		h.remote.On("UpdatePetStats", mock.Anything, mock.Anything).Return(nil).Times(3)

		for i := 0; i < 3; i++ {
			require.NoError(t, h.svc.UseItem(ctx, stackID, "pet-1"))
		}

		pet := h.svc.ActivePet()
		require.NotNil(t, pet)
		assert.Equal(t, domain.PetStatMax, pet.Health)
		assert.Empty(t, h.svc.Inventory(), "all three units consumed")
	})

	t.Run("unbounded stats accumulate without a cap", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		createActivePet(t, h, 1)
		stackID := giveItem(t, h, "energy-drink-1", 2)
		h.remote.On("UpdatePetStats", mock.Anything, mock.Anything).Return(nil).Twice()

		require.NoError(t, h.svc.UseItem(ctx, stackID, "pet-1"))
		require.NoError(t, h.svc.UseItem(ctx, stackID, "pet-1"))

		pet := h.svc.ActivePet()
		assert.Equal(t, 4, pet.Speed)
		assert.Equal(t, 2, pet.Dexterity)
	})

	t.Run("item without applicable effects fails and consumes nothing", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		createActivePet(t, h, 1)

		item := domain.Item{Slug: "broken-trinket", Name: "Broken Trinket", Type: domain.ItemTypeSpecial,
			Effects: map[string]int{"charisma": 2}}
		h.remote.On("AddInventoryItem", mock.Anything, "user-1", mock.Anything, 1).Return("inv-x", nil).Once()
		stackID, err := h.svc.AddToInventory(ctx, item, 1)
		require.NoError(t, err)

		err = h.svc.UseItem(ctx, stackID, "pet-1")

		assert.ErrorIs(t, err, domain.ErrNoApplicableEffect)
		require.Len(t, h.svc.Inventory(), 1)
		assert.Equal(t, 1, h.svc.Inventory()[0].Quantity)
	})

	t.Run("unknown stack fails", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		createActivePet(t, h, 1)

		err := h.svc.UseItem(ctx, "missing", "pet-1")

		assert.ErrorIs(t, err, domain.ErrStackNotFound)
	})

	t.Run("unknown pet fails without consuming", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		createActivePet(t, h, 1)
		stackID := giveItem(t, h, "health-potion-1", 1)

		err := h.svc.UseItem(ctx, stackID, "missing-pet")

		assert.ErrorIs(t, err, domain.ErrPetNotFound)
		assert.Len(t, h.svc.Inventory(), 1)
	})

	t.Run("remote stat rejection leaves pet and stack untouched", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		createActivePet(t, h, 1)
		stackID := giveItem(t, h, "health-potion-1", 1)
		h.remote.On("UpdatePetStats", mock.Anything, mock.Anything).Return(domain.ErrExternalFailure).Once()

		err := h.svc.UseItem(ctx, stackID, "pet-1")

		assert.ErrorIs(t, err, domain.ErrExternalFailure)
		assert.Equal(t, 0, h.svc.ActivePet().Health)
		assert.Len(t, h.svc.Inventory(), 1)
	})

	t.Run("empty pet id targets the active pet", func(t *testing.T) {
		h := newHarness(t)
		h.login(t, testUser())
		createActivePet(t, h, 1)
		stackID := giveItem(t, h, "magic-apple-1", 1)
		h.remote.On("UpdatePetStats", mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, h.svc.UseItem(ctx, stackID, ""))

		pet := h.svc.ActivePet()
		assert.Equal(t, 3, pet.Hunger)
		assert.Equal(t, 1, pet.Happiness)
	})
}
