package domain

import "time"

// Primary pet attributes are clamped to [PetStatMin, PetStatMax]; secondary
// attributes accumulate without an upper bound.
const (
	PetStatMin = 0
	PetStatMax = 10
)

// Pet represents a player's creature. Death is a flag, not removal.
type Pet struct {
	ID      string `json:"id"`
	OwnerID string `json:"ownerId"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Level   int    `json:"level"`

	// Bounded primary attributes (0..10)
	Happiness int `json:"happiness"`
	Health    int `json:"health"`
	Hunger    int `json:"hunger"`

	// Unbounded secondary attributes
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Speed        int `json:"speed"`
	Attack       int `json:"attack"`
	Defense      int `json:"defense"`
	Precision    int `json:"precision"`
	Evasion      int `json:"evasion"`
	Luck         int `json:"luck"`

	IsActive  bool       `json:"isActive"`
	IsDead    bool       `json:"isDead"`
	DeathDate *time.Time `json:"deathDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// boundedStats are the primary attributes that clamp to [0, 10].
var boundedStats = map[string]bool{
	"happiness": true,
	"health":    true,
	"hunger":    true,
}

// IsBoundedStat reports whether an effect key targets a clamped attribute.
func IsBoundedStat(stat string) bool {
	return boundedStats[stat]
}

// ClampStat clamps a bounded attribute value to its valid range.
func ClampStat(v int) int {
	if v < PetStatMin {
		return PetStatMin
	}
	if v > PetStatMax {
		return PetStatMax
	}
	return v
}

// ApplyEffect applies a single named effect to the pet, clamping bounded
// attributes and accumulating unbounded ones. Returns false when the effect
// key does not map to any known attribute.
func (p *Pet) ApplyEffect(stat string, value int) bool {
	switch stat {
	case "happiness":
		p.Happiness = ClampStat(p.Happiness + value)
	case "health":
		p.Health = ClampStat(p.Health + value)
	case "hunger":
		p.Hunger = ClampStat(p.Hunger + value)
	case "strength":
		p.Strength += value
	case "dexterity":
		p.Dexterity += value
	case "intelligence":
		p.Intelligence += value
	case "speed":
		p.Speed += value
	case "attack":
		p.Attack += value
	case "defense":
		p.Defense += value
	case "precision":
		p.Precision += value
	case "evasion":
		p.Evasion += value
	case "luck":
		p.Luck += value
	default:
		return false
	}
	return true
}
