package domain

import "time"

// PlayerProfile is the public view of another player returned by search and
// profile lookups. It never exposes wallet balances.
type PlayerProfile struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	AccountScore  int       `json:"accountScore"`
	ActivePetName string    `json:"activePetName,omitempty"`
	PetCount      int       `json:"petCount"`
	CreatedAt     time.Time `json:"createdAt"`
	LastLogin     time.Time `json:"lastLogin"`
}

// UserData is the remote-fetched bundle restored into a fresh session.
type UserData struct {
	Pets          []Pet          `json:"pets"`
	Inventory     Inventory      `json:"inventory"`
	Xenocoins     int            `json:"xenocoins"`
	Cash          int            `json:"cash"`
	Notifications []Notification `json:"notifications"`
	Achievements  []Achievement  `json:"achievements"`
	Collectibles  []Collectible  `json:"collectibles"`
	HatchingEgg   *HatchingEgg   `json:"hatchingEgg,omitempty"`
}
