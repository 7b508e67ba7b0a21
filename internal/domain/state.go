package domain

import "time"

// HatchDuration is how long an egg incubates before it can hatch.
const HatchDuration = 3 * time.Minute

// HatchingEgg is an in-progress incubation. It belongs to exactly one user;
// restoring a snapshot discards eggs whose UserID does not match the session
// owner.
type HatchingEgg struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	EggType   string         `json:"eggType"`
	StartTime time.Time      `json:"startTime"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ReadyAt returns the instant the egg finishes incubating.
func (e *HatchingEgg) ReadyAt() time.Time {
	return e.StartTime.Add(HatchDuration)
}

// Ready reports whether the egg has finished incubating at the given time.
func (e *HatchingEgg) Ready(now time.Time) bool {
	return !now.Before(e.ReadyAt())
}

/// GameState is the mutable per-session game world: the logged-in user, their
// pets, wallet, inventory and collections. All game operations read and write
// a single GameState guarded by its owning service.
type GameState struct {
	User      *User `json:"user"`
	Xenocoins int   `json:"xenocoins"`
	Cash      int   `json:"cash"`

	Pets      []Pet  `json:"pets"`
	ActivePet *Pet   `json:"activePet"`
	Language  string `json:"language"`

	Inventory     Inventory      `json:"inventory"`
	Notifications []Notification `json:"notifications"`
	Achievements  []Achievement  `json:"achievements"`
	Collectibles  []Collectible  `json:"collectibles"`
	RedeemCodes   []RedeemCode   `json:"redeemCodes"`

	Ships       []Ship       `json:"ships"`
	OwnedShips  []Ship       `json:"ownedShips"`
	ActiveShip  *Ship        `json:"activeShip"`
	HatchingEgg *HatchingEgg `json:"hatchingEgg"`

	CurrentScreen string `json:"currentScreen"`
}

// NewGameState returns an empty state with non-nil collections.
func NewGameState() *GameState {
	return &GameState{
		Pets:          []Pet{},
		Inventory:     Inventory{Stacks: []InventoryStack{}},
		Notifications: []Notification{},
		Achievements:  []Achievement{},
		Collectibles:  []Collectible{},
		RedeemCodes:   []RedeemCode{},
		Ships:         []Ship{},
		OwnedShips:    []Ship{},
		Language:      "pt-BR",
		CurrentScreen: "pet",
	}
}

// Balance returns the wallet amount for the given currency.
func (s *GameState) Balance(kind CurrencyKind) int {
	if kind == CurrencyCash {
		return s.Cash
	}
	return s.Xenocoins
}

// SetBalance overwrites the wallet amount for the given currency, flooring
// at zero.
func (s *GameState) SetBalance(kind CurrencyKind, amount int) {
	if amount < 0 {
		amount = 0
	}
	if kind == CurrencyCash {
		s.Cash = amount
		return
	}
	s.Xenocoins = amount
}

// OwnsShip reports whether the user owns the given catalog ship. The default
// ship is always owned.
func (s *GameState) OwnsShip(shipID string) bool {
	for i := range s.OwnedShips {
		if s.OwnedShips[i].ID == shipID {
			return true
		}
	}
	for i := range s.Ships {
		if s.Ships[i].ID == shipID && s.Ships[i].IsDefault {
			return true
		}
	}
	return false
}
