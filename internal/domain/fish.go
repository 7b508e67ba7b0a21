package domain

import "time"

// Fish is a live spawn entity managed by the fishing scheduler.
type Fish struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Size    int     `json:"size"`
	Rarity  Rarity  `json:"rarity"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`

	SpawnTime time.Time  `json:"spawnTime"`
	Caught    bool       `json:"caught"`
	CaughtAt  *time.Time `json:"caughtAt,omitempty"`
	CaughtBy  string     `json:"caughtByUserId,omitempty"`
}

// FishSpecies is a read-only species definition: a discrete size-probability
// table, a fixed rarity and a fixed respawn delay.
type FishSpecies struct {
	Name        string          `json:"name" validate:"required"`
	MinSize     int             `json:"minSize" validate:"gt=0"`
	MaxSize     int             `json:"maxSize" validate:"gtefield=MinSize"`
	SizeProbs   map[int]float64 `json:"sizeProbabilities" validate:"required"`
	RespawnMs   int             `json:"respawnMs" validate:"gt=0"`
	Rarity      Rarity          `json:"rarity"`
	Description string          `json:"description"`
}

// RespawnDelay returns the species' respawn delay as a duration.
func (s FishSpecies) RespawnDelay() time.Duration {
	return time.Duration(s.RespawnMs) * time.Millisecond
}

// FishingSpot is a fixed (position, species) pairing where at most one fish
// is active at a time.
type FishingSpot struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Species string  `json:"species" validate:"required"`
}
