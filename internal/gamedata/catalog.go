// Package gamedata loads the embedded game catalogs: item definitions,
// store stock, the ship roster, fish species tables, redeem codes and the
// planet map. Catalogs are read-only after Load.
package gamedata

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/xenopets/XenoPets_Go/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// Sentinel errors for catalog loading
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrDuplicateSlug  = errors.New("duplicate slug")
)

type itemsFile struct {
	Version string        `json:"version"`
	Items   []domain.Item `json:"items" validate:"required,dive"`
}

type storesFile struct {
	Version string         `json:"version"`
	Stores  []domain.Store `json:"stores" validate:"required,dive"`
}

type shipsFile struct {
	Version string        `json:"version"`
	Ships   []domain.Ship `json:"ships" validate:"required,dive"`
}

type fishFile struct {
	Version string               `json:"version"`
	Species []domain.FishSpecies `json:"species" validate:"required,dive"`
	Spots   []domain.FishingSpot `json:"spots" validate:"required,dive"`
}

type codesFile struct {
	Version string              `json:"version"`
	Codes   []domain.RedeemCode `json:"codes"`
}

type planetsFile struct {
	Version string          `json:"version"`
	Planets []domain.Planet `json:"planets" validate:"required,dive"`
}

// Catalog is the loaded, indexed game data.
type Catalog struct {
	items   map[string]domain.Item
	stores  map[string]domain.Store
	ships   map[string]domain.Ship
	species map[string]domain.FishSpecies
	planets map[string]domain.Planet

	itemList   []domain.Item
	storeList  []domain.Store
	shipList   []domain.Ship
	spotList   []domain.FishingSpot
	codeList   []domain.RedeemCode
	planetList []domain.Planet
}

// Load parses and validates every embedded catalog file.
func Load() (*Catalog, error) {
	validate := validator.New()
	c := &Catalog{
		items:   make(map[string]domain.Item),
		stores:  make(map[string]domain.Store),
		ships:   make(map[string]domain.Ship),
		species: make(map[string]domain.FishSpecies),
		planets: make(map[string]domain.Planet),
	}

	var items itemsFile
	if err := loadFile("data/items.json", &items, validate); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, item := range items.Items {
		if _, exists := c.items[item.Slug]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, item.Slug)
		}
		item.CreatedAt = now
		c.items[item.Slug] = item
	}
	c.itemList = items.Items

	var stores storesFile
	if err := loadFile("data/stores.json", &stores, validate); err != nil {
		return nil, err
	}
	for _, store := range stores.Stores {
		for _, entry := range store.Inventory {
			if _, ok := c.items[entry.ItemSlug]; !ok {
				return nil, fmt.Errorf("%w: store %q references unknown item %q",
					ErrInvalidCatalog, store.ID, entry.ItemSlug)
			}
			if entry.Stock > entry.MaxStock {
				return nil, fmt.Errorf("%w: store %q entry %q has stock above max",
					ErrInvalidCatalog, store.ID, entry.ID)
			}
		}
		c.stores[store.ID] = store
	}
	c.storeList = stores.Stores

	var ships shipsFile
	if err := loadFile("data/ships.json", &ships, validate); err != nil {
		return nil, err
	}
	defaults := 0
	for _, ship := range ships.Ships {
		if ship.IsDefault {
			defaults++
		}
		c.ships[ship.ID] = ship
	}
	if defaults != 1 {
		return nil, fmt.Errorf("%w: expected exactly one default ship, got %d", ErrInvalidCatalog, defaults)
	}
	c.shipList = ships.Ships

	var fish fishFile
	if err := loadFile("data/fish.json", &fish, validate); err != nil {
		return nil, err
	}
	for _, sp := range fish.Species {
		if err := validateDistribution(sp); err != nil {
			return nil, err
		}
		c.species[sp.Name] = sp
	}
	for _, spot := range fish.Spots {
		if _, ok := c.species[spot.Species]; !ok {
			return nil, fmt.Errorf("%w: spot references unknown species %q", ErrInvalidCatalog, spot.Species)
		}
	}
	c.spotList = fish.Spots

	var codes codesFile
	if err := loadFile("data/codes.json", &codes, validate); err != nil {
		return nil, err
	}
	for i := range codes.Codes {
		codes.Codes[i].CreatedAt = now
		if codes.Codes[i].UsedBy == nil {
			codes.Codes[i].UsedBy = []string{}
		}
	}
	c.codeList = codes.Codes

	var planets planetsFile
	if err := loadFile("data/planets.json", &planets, validate); err != nil {
		return nil, err
	}
	for _, planet := range planets.Planets {
		c.planets[planet.ID] = planet
	}
	c.planetList = planets.Planets

	return c, nil
}

func loadFile(path string, dst any, validate *validator.Validate) error {
	data, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, path, err)
	}
	return nil
}

// validateDistribution checks that a species' size table covers its range
// and sums to one.
func validateDistribution(sp domain.FishSpecies) error {
	var total float64
	for size, p := range sp.SizeProbs {
		if size < sp.MinSize || size > sp.MaxSize {
			return fmt.Errorf("%w: species %q has probability for out-of-range size %d",
				ErrInvalidCatalog, sp.Name, size)
		}
		if p < 0 {
			return fmt.Errorf("%w: species %q has negative probability", ErrInvalidCatalog, sp.Name)
		}
		total += p
	}
	if total < 0.999 || total > 1.001 {
		return fmt.Errorf("%w: species %q probabilities sum to %v, want 1",
			ErrInvalidCatalog, sp.Name, total)
	}
	return nil
}

// Item returns the catalog item for slug.
func (c *Catalog) Item(slug string) (domain.Item, bool) {
	item, ok := c.items[slug]
	return item, ok
}

// Items returns all catalog items.
func (c *Catalog) Items() []domain.Item {
	return c.itemList
}

// Store returns a deep copy of the store definition so callers can mutate
// stock without touching the catalog.
func (c *Catalog) Store(id string) (domain.Store, bool) {
	store, ok := c.stores[id]
	if !ok {
		return domain.Store{}, false
	}
	inventory := make([]domain.StoreItem, len(store.Inventory))
	copy(inventory, store.Inventory)
	store.Inventory = inventory
	return store, true
}

// Stores returns all store definitions.
func (c *Catalog) Stores() []domain.Store {
	return c.storeList
}

// Ship returns the catalog ship for id.
func (c *Catalog) Ship(id string) (domain.Ship, bool) {
	ship, ok := c.ships[id]
	return ship, ok
}

// Ships returns the full ship roster.
func (c *Catalog) Ships() []domain.Ship {
	return c.shipList
}

// DefaultShip returns the roster's default ship.
func (c *Catalog) DefaultShip() domain.Ship {
	for _, ship := range c.shipList {
		if ship.IsDefault {
			return ship
		}
	}
	// Load guarantees exactly one default.
	return domain.Ship{}
}

// Species returns the fish species definition by name.
func (c *Catalog) Species(name string) (domain.FishSpecies, bool) {
	sp, ok := c.species[name]
	return sp, ok
}

// FishingSpots returns the fixed spot table.
func (c *Catalog) FishingSpots() []domain.FishingSpot {
	return c.spotList
}

// SeedCodes returns fresh copies of the built-in redeem codes.
func (c *Catalog) SeedCodes() []domain.RedeemCode {
	out := make([]domain.RedeemCode, len(c.codeList))
	copy(out, c.codeList)
	for i := range out {
		out[i].UsedBy = append([]string{}, c.codeList[i].UsedBy...)
	}
	return out
}

// Planet returns the planet definition by id.
func (c *Catalog) Planet(id string) (domain.Planet, bool) {
	planet, ok := c.planets[id]
	return planet, ok
}

// Planets returns the space map.
func (c *Catalog) Planets() []domain.Planet {
	return c.planetList
}
