package domain

import "time"

// Item rarity tiers, ordered from most to least common.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityUnique    Rarity = "Unique"
)

// Item types recognized by the engine.
const (
	ItemTypeFood      = "Food"
	ItemTypePotion    = "Potion"
	ItemTypeEquipment = "Equipment"
	ItemTypeWeapon    = "Weapon"
	ItemTypeSpecial   = "Special"
	ItemTypeFish      = "Fish"
)

// Item is a catalog item definition keyed by a stable slug. Effects map
// attribute names to signed deltas applied by UseItem.
type Item struct {
	Slug        string         `json:"slug" validate:"required"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Type        string         `json:"type" validate:"required"`
	Rarity      Rarity         `json:"rarity"`
	Price       int            `json:"price" validate:"gte=0"`
	Currency    CurrencyKind   `json:"currency"`
	Effects     map[string]int `json:"effects,omitempty"`
	DailyLimit  int            `json:"dailyLimit,omitempty"`
	Slot        string         `json:"slot,omitempty"`
	CreatedAt   time.Time      `json:"createdAt,omitempty"`
	FishData    *FishData      `json:"fishData,omitempty"`
}

// FishData is the per-instance payload attached to caught-fish items.
type FishData struct {
	Species        string    `json:"species"`
	Size           int       `json:"size"`
	CaughtAt       time.Time `json:"caughtAt"`
	CaughtPosition Position  `json:"caughtPosition"`
}

// Position is a normalized 2D coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
