package domain

import "time"

// ExplorationPoint is a clickable landmark on a planet surface. Positions are
// normalized to a 0-100 scale. Points are generated deterministically per
// planet and may be edited by admins afterwards.
type ExplorationPoint struct {
	ID          string  `json:"id"`
	PlanetID    string  `json:"planetId"`
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Size        float64 `json:"size"`
	Active      bool    `json:"active"`
	Discovered  bool    `json:"discovered"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

// ExplorationArea is the interior view derived from a point.
type ExplorationArea struct {
	ID          string `json:"id"`
	PointID     string `json:"pointId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Planet is a world entry on the space map. Coordinates are absolute map
// units; InteractionRadius is the landing area around the planet.
type Planet struct {
	ID                string    `json:"id" validate:"required"`
	Name              string    `json:"name" validate:"required"`
	X                 float64   `json:"x"`
	Y                 float64   `json:"y"`
	Size              float64   `json:"size"`
	Rotation          float64   `json:"rotation"`
	Color             string    `json:"color"`
	InteractionRadius float64   `json:"interactionRadius"`
	ImageURL          string    `json:"imageUrl"`
	CreatedAt         time.Time `json:"createdAt,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt,omitempty"`
}
