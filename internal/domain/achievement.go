package domain

import "time"

// Achievement tracks progress toward a milestone. Unlocked achievements keep
// their UnlockedAt timestamp for display ordering.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Points      int        `json:"points"`
	Progress    int        `json:"progress"`
	MaxProgress int        `json:"maxProgress"`
	IsUnlocked  bool       `json:"isUnlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
}

// Collectible is a cosmetic account trophy. Collected entries carry the
// collection timestamp.
type Collectible struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Rarity        Rarity     `json:"rarity"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	AccountPoints int        `json:"accountPoints"`
	IsCollected   bool       `json:"isCollected"`
	CollectedAt   *time.Time `json:"obtainedAt,omitempty"`
}
