package domain

import "time"

// StoreType classifies a shop on a planet.
type StoreType string

const (
	StoreGeneral      StoreType = "general"
	StoreEquipment    StoreType = "equipment"
	StoreFood         StoreType = "food"
	StorePotions      StoreType = "potions"
	StoreCollectibles StoreType = "collectibles"
	StorePremium      StoreType = "premium"
	StoreSeasonal     StoreType = "seasonal"
)

// Requirement gates a store entry behind player state (pet level,
// achievement, ...). Description is surfaced verbatim on failure.
type Requirement struct {
	Type        string `json:"type" validate:"required,oneof=level achievement item currency reputation"`
	Value       any    `json:"value"`
	Description string `json:"description"`
}

// StoreItem is one stocked catalog entry. CurrentPrice already includes any
// active discount. Stock never exceeds MaxStock.
type StoreItem struct {
	ID            string        `json:"id" validate:"required"`
	ItemSlug      string        `json:"itemSlug" validate:"required"`
	BasePrice     int           `json:"basePrice" validate:"gte=0"`
	CurrentPrice  int           `json:"currentPrice" validate:"gte=0"`
	Currency      CurrencyKind  `json:"currency"`
	Stock         int           `json:"stock" validate:"gte=0"`
	MaxStock      int           `json:"maxStock" validate:"gte=0"`
	RestockRate   int           `json:"restockRate" validate:"gte=0"`
	IsLimited     bool          `json:"isLimited"`
	IsOnSale      bool          `json:"isOnSale"`
	SaleDiscount  int           `json:"saleDiscount"`
	Requirements  []Requirement `json:"requirements,omitempty"`
	LastRestocked time.Time     `json:"lastRestocked"`
}

// Store is an NPC shop with stocked inventory.
type Store struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description"`
	Type        StoreType   `json:"type"`
	NPCName     string      `json:"npcName"`
	NPCDialogue string      `json:"npcDialogue"`
	Inventory   []StoreItem `json:"inventory" validate:"dive"`
	IsOpen      bool        `json:"isOpen"`
	CreatedAt   time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty"`
}

// FindItem returns the stocked entry with the given id, or nil.
func (s *Store) FindItem(itemID string) *StoreItem {
	for i := range s.Inventory {
		if s.Inventory[i].ID == itemID {
			return &s.Inventory[i]
		}
	}
	return nil
}

// PurchaseResult reports the outcome of a store purchase.
type PurchaseResult struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Item       *Item        `json:"item,omitempty"`
	TotalCost  int          `json:"totalCost"`
	Currency   CurrencyKind `json:"currency"`
	NewBalance int          `json:"newBalance"`
}
