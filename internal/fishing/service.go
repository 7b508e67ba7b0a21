// Package fishing runs the spawn scheduler: one creature per fixed spot,
// procedural sizes, and a respawn timer per spot after every catch.
package fishing

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/gamedata"
	"github.com/xenopets/XenoPets_Go/internal/logger"
	"github.com/xenopets/XenoPets_Go/internal/rng"
)

const (
	// spotTolerance is the distance within which two positions count as the
	// same spot.
	spotTolerance = 0.1

	// DefaultCatchRadius is how close a cast must land to hook a fish.
	DefaultCatchRadius = 0.05
)

// Stats is a snapshot of scheduler occupancy.
type Stats struct {
	ActiveFish      int `json:"activeFish"`
	PendingRespawns int `json:"pendingRespawns"`
}

// Service is the fish spawn scheduler.
type Service interface {
	// SpawnAll populates every free spot with a fresh fish.
	SpawnAll(ctx context.Context)

	// ActiveFish lists the currently catchable fish.
	ActiveFish(ctx context.Context) []domain.Fish

	// FishNear returns the first active fish within radius of (x, y), or nil.
	FishNear(ctx context.Context, x, y, radius float64) *domain.Fish

	// Catch marks a fish caught by userID, removes it from the active set
	// and schedules a respawn at its spot. Returns the caught snapshot.
	Catch(ctx context.Context, fishID, userID string) (domain.Fish, error)

	// Advance fires every respawn entry due at or before now. The worker
	// tick calls this with the wall clock; tests drive it directly.
	Advance(ctx context.Context, now time.Time) int

	// ConvertToItem turns a caught fish into an inventory item carrying its
	// catch payload.
	ConvertToItem(fish domain.Fish) domain.Item

	// Stats reports scheduler occupancy.
	Stats(ctx context.Context) Stats

	// Cleanup drops all fish and pending respawns.
	Cleanup(ctx context.Context)
}

type respawnEntry struct {
	spot domain.FishingSpot
	due  time.Time
}

type service struct {
	catalog *gamedata.Catalog
	clock   clock.Clock
	rand    *rng.Source

	mu       sync.Mutex
	active   map[string]domain.Fish
	respawns map[string]respawnEntry
}

// NewService creates a scheduler over the catalog's spot table. The random
// source drives size rolls; pass a fixed seed for reproducible tests.
func NewService(catalog *gamedata.Catalog, clk clock.Clock, rand *rng.Source) Service {
	return &service{
		catalog:  catalog,
		clock:    clk,
		rand:     rand,
		active:   make(map[string]domain.Fish),
		respawns: make(map[string]respawnEntry),
	}
}

func (s *service) SpawnAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, spot := range s.catalog.FishingSpots() {
		s.spawnAtSpotLocked(ctx, spot)
	}
}

func (s *service) ActiveFish(_ context.Context) []domain.Fish {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Fish, 0, len(s.active))
	for _, fish := range s.active {
		out = append(out, fish)
	}
	return out
}

func (s *service) FishNear(_ context.Context, x, y, radius float64) *domain.Fish {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, fish := range s.active {
		if distance(fish.X, fish.Y, x, y) <= radius {
			found := fish
			return &found
		}
	}
	return nil
}

func (s *service) Catch(ctx context.Context, fishID, userID string) (domain.Fish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fish, ok := s.active[fishID]
	if !ok || fish.Caught {
		return domain.Fish{}, fmt.Errorf("%w: %s", domain.ErrFishNotFound, fishID)
	}

	now := s.clock.Now()
	fish.Caught = true
	fish.CaughtAt = &now
	fish.CaughtBy = userID
	delete(s.active, fishID)

	s.scheduleRespawnLocked(ctx, fish)

	logger.FromContext(ctx).Info("Fish caught",
		"fish_id", fishID, "species", fish.Species, "size", fish.Size, "user_id", userID)
	return fish, nil
}

// scheduleRespawnLocked keys the timer by (species, spot position) so a spot
// never accumulates more than one pending respawn.
func (s *service) scheduleRespawnLocked(ctx context.Context, caught domain.Fish) {
	species, ok := s.catalog.Species(caught.Species)
	if !ok {
		logger.FromContext(ctx).Warn("No species definition for respawn", "species", caught.Species)
		return
	}

	var spot *domain.FishingSpot
	for _, candidate := range s.catalog.FishingSpots() {
		if candidate.Species == caught.Species &&
			math.Abs(candidate.X-caught.X) < DefaultCatchRadius &&
			math.Abs(candidate.Y-caught.Y) < DefaultCatchRadius {
			found := candidate
			spot = &found
			break
		}
	}
	if spot == nil {
		return
	}

	key := respawnKey(caught.Species, caught.X, caught.Y)
	s.respawns[key] = respawnEntry{
		spot: *spot,
		due:  s.clock.Now().Add(species.RespawnDelay()),
	}
}

func (s *service) Advance(ctx context.Context, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	fired := 0
	for key, entry := range s.respawns {
		if entry.due.After(now) {
			continue
		}
		delete(s.respawns, key)
		if s.spawnAtSpotLocked(ctx, entry.spot) {
			fired++
		}
	}
	return fired
}

func (s *service) ConvertToItem(fish domain.Fish) domain.Item {
	now := s.clock.Now()
	caughtAt := now
	if fish.CaughtAt != nil {
		caughtAt = *fish.CaughtAt
	}

	description := fmt.Sprintf("Tamanho: %d", fish.Size)
	if species, ok := s.catalog.Species(fish.Species); ok {
		description = fmt.Sprintf("%s Tamanho: %d", species.Description, fish.Size)
	}

	return domain.Item{
		Slug:        fmt.Sprintf("%s-size-%d", strings.ReplaceAll(strings.ToLower(fish.Species), " ", "-"), fish.Size),
		Name:        fish.Name,
		Description: description,
		Type:        domain.ItemTypeFish,
		Rarity:      fish.Rarity,
		CreatedAt:   now,
		FishData: &domain.FishData{
			Species:        fish.Species,
			Size:           fish.Size,
			CaughtAt:       caughtAt,
			CaughtPosition: domain.Position{X: fish.X, Y: fish.Y},
		},
	}
}

func (s *service) Stats(_ context.Context) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		ActiveFish:      len(s.active),
		PendingRespawns: len(s.respawns),
	}
}

func (s *service) Cleanup(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = make(map[string]domain.Fish)
	s.respawns = make(map[string]respawnEntry)
}

// spawnAtSpotLocked creates a fish at the spot unless one is already there.
func (s *service) spawnAtSpotLocked(ctx context.Context, spot domain.FishingSpot) bool {
	for _, fish := range s.active {
		if math.Abs(fish.X-spot.X) < spotTolerance && math.Abs(fish.Y-spot.Y) < spotTolerance {
			return false
		}
	}

	species, ok := s.catalog.Species(spot.Species)
	if !ok {
		logger.FromContext(ctx).Warn("Spot references unknown species", "species", spot.Species)
		return false
	}

	size := RollSize(species, s.rand.Float64())
	fish := domain.Fish{
		ID:        fmt.Sprintf("fish_%s_%s", strings.ReplaceAll(strings.ToLower(spot.Species), " ", "_"), uuid.NewString()),
		Name:      fmt.Sprintf("%s (Tamanho %d)", spot.Species, size),
		Species:   spot.Species,
		Size:      size,
		Rarity:    RarityForSize(species, size),
		X:         spot.X,
		Y:         spot.Y,
		SpawnTime: s.clock.Now(),
	}
	s.active[fish.ID] = fish

	logger.FromContext(ctx).Debug("Fish spawned",
		"species", fish.Species, "size", fish.Size, "x", fish.X, "y", fish.Y)
	return true
}

func respawnKey(species string, x, y float64) string {
	return fmt.Sprintf("%s_%v_%v", species, x, y)
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt((x1-x2)*(x1-x2) + (y1-y2)*(y1-y2))
}
