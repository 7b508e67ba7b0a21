package domain

import "time"

// ShipStats are stat multipliers relative to the default ship.
type ShipStats struct {
	Speed            float64 `json:"speed"`
	ProjectileDamage float64 `json:"projectileDamage"`
	Health           int     `json:"health"`
	Maneuverability  float64 `json:"maneuverability"`
}

// ShipVisuals are cosmetic parameters for rendering.
type ShipVisuals struct {
	TrailColor      string  `json:"trailColor"`
	ProjectileColor string  `json:"projectileColor"`
	TrailOpacity    float64 `json:"trailOpacity"`
	ProjectileSize  float64 `json:"projectileSize"`
}

// Ship is a catalog entry. Exactly one catalog ship carries IsDefault and is
// implicitly owned by every user. Ownership is a separate set (ownedShips);
// "active" is a single pointer into owned-or-default ships.
type Ship struct {
	ID          string       `json:"id" validate:"required"`
	Name        string       `json:"name" validate:"required"`
	Description string       `json:"description"`
	Price       int          `json:"price" validate:"gte=0"`
	Currency    CurrencyKind `json:"currency"`
	Stats       ShipStats    `json:"stats"`
	Visuals     ShipVisuals  `json:"visuals"`
	IsDefault   bool         `json:"isDefault"`
	OwnedAt     *time.Time   `json:"ownedAt,omitempty"`
}
