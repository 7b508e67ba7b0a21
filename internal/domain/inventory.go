package domain

// InventoryStack is one inventory slot's worth of a catalog item: the item
// definition plus a unique per-stack instance identifier and a quantity.
// A stack with quantity zero is removed, never kept.
type InventoryStack struct {
	InventoryID string    `json:"inventoryId"`
	Item        Item      `json:"item"`
	Quantity    int       `json:"quantity"`
	IsEquipped  bool      `json:"isEquipped"`
	EquippedPet string    `json:"equippedPetId,omitempty"`
	FishData    *FishData `json:"fishData,omitempty"`
}

// Inventory holds all of a user's stacks. Instance identifiers are unique
// across the inventory.
type Inventory struct {
	Stacks []InventoryStack `json:"stacks"`
}

// FindStack returns the index of the stack with the given instance id, or -1.
func (inv *Inventory) FindStack(inventoryID string) int {
	for i := range inv.Stacks {
		if inv.Stacks[i].InventoryID == inventoryID {
			return i
		}
	}
	return -1
}

// FindUnequippedBySlug returns the index of the first unequipped stack of the
// given catalog item, or -1. Purchases merge into such stacks.
func (inv *Inventory) FindUnequippedBySlug(slug string) int {
	for i := range inv.Stacks {
		if inv.Stacks[i].Item.Slug == slug && !inv.Stacks[i].IsEquipped {
			return i
		}
	}
	return -1
}

// RemoveAt deletes the stack at index i.
func (inv *Inventory) RemoveAt(i int) {
	inv.Stacks = append(inv.Stacks[:i], inv.Stacks[i+1:]...)
}
