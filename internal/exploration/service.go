// Package exploration generates and manages planet surface points: the
// deterministic layout generator, stored admin overrides, and the interior
// areas derived from points.
package exploration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/xenopets/XenoPets_Go/internal/config"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
	"github.com/xenopets/XenoPets_Go/internal/persist"
)

const (
	cacheSize = 64
	cacheTTL  = 5 * time.Minute
)

// PointUpdate carries partial edits to a point. Nil fields are left as-is.
type PointUpdate struct {
	Name        *string
	X           *float64
	Y           *float64
	Size        *float64
	Active      *bool
	Description *string
	ImageURL    *string
}

// Service manages exploration points per planet.
type Service interface {
	// Points returns the planet's current layout: the stored override when
	// one exists, the generated layout otherwise.
	Points(ctx context.Context, planetID string) ([]domain.ExplorationPoint, error)

	// Area derives the interior view for a point.
	Area(ctx context.Context, planetID, pointID string) (domain.ExplorationArea, error)

	// UpdatePoint applies a partial edit and persists the planet override.
	UpdatePoint(ctx context.Context, planetID, pointID string, update PointUpdate) (domain.ExplorationPoint, error)

	// ToggleActive flips a point's active flag and persists the override.
	ToggleActive(ctx context.Context, planetID, pointID string) (domain.ExplorationPoint, error)

	// AddPoint appends a new point at the given position and persists.
	AddPoint(ctx context.Context, planetID string, x, y float64) (domain.ExplorationPoint, error)

	// RemovePoint deletes a point and persists the override.
	RemovePoint(ctx context.Context, planetID, pointID string) error
}

type service struct {
	store persist.Store
	cache *expirable.LRU[string, []domain.ExplorationPoint]
}

// NewService creates an exploration service backed by the given store.
func NewService(store persist.Store) Service {
	return &service{
		store: store,
		cache: expirable.NewLRU[string, []domain.ExplorationPoint](cacheSize, nil, cacheTTL),
	}
}

func overrideKey(planetID string) string {
	return config.ExplorationKeyPrefix + planetID
}

func (s *service) Points(ctx context.Context, planetID string) ([]domain.ExplorationPoint, error) {
	if cached, ok := s.cache.Get(planetID); ok {
		return clonePoints(cached), nil
	}

	stored, err := s.loadOverride(ctx, planetID)
	if err != nil {
		return nil, err
	}
	if stored != nil {
		s.cache.Add(planetID, clonePoints(stored))
		return stored, nil
	}

	points := Generate(planetID)
	s.cache.Add(planetID, clonePoints(points))
	return points, nil
}

func (s *service) Area(ctx context.Context, planetID, pointID string) (domain.ExplorationArea, error) {
	points, err := s.Points(ctx, planetID)
	if err != nil {
		return domain.ExplorationArea{}, err
	}
	for _, point := range points {
		if point.ID == pointID {
			return BuildArea(point), nil
		}
	}
	return domain.ExplorationArea{}, fmt.Errorf("%w: %s", domain.ErrPointNotFound, pointID)
}

func (s *service) UpdatePoint(ctx context.Context, planetID, pointID string, update PointUpdate) (domain.ExplorationPoint, error) {
	points, err := s.Points(ctx, planetID)
	if err != nil {
		return domain.ExplorationPoint{}, err
	}

	idx := indexOf(points, pointID)
	if idx < 0 {
		return domain.ExplorationPoint{}, fmt.Errorf("%w: %s", domain.ErrPointNotFound, pointID)
	}

	point := &points[idx]
	if update.Name != nil {
		point.Name = *update.Name
	}
	if update.X != nil {
		point.X = *update.X
	}
	if update.Y != nil {
		point.Y = *update.Y
	}
	if update.Size != nil {
		point.Size = *update.Size
	}
	if update.Active != nil {
		point.Active = *update.Active
	}
	if update.Description != nil {
		point.Description = *update.Description
	}
	if update.ImageURL != nil {
		point.ImageURL = *update.ImageURL
	}

	if err := s.saveOverride(ctx, planetID, points); err != nil {
		return domain.ExplorationPoint{}, err
	}
	return *point, nil
}

func (s *service) ToggleActive(ctx context.Context, planetID, pointID string) (domain.ExplorationPoint, error) {
	points, err := s.Points(ctx, planetID)
	if err != nil {
		return domain.ExplorationPoint{}, err
	}

	idx := indexOf(points, pointID)
	if idx < 0 {
		return domain.ExplorationPoint{}, fmt.Errorf("%w: %s", domain.ErrPointNotFound, pointID)
	}

	points[idx].Active = !points[idx].Active
	if err := s.saveOverride(ctx, planetID, points); err != nil {
		return domain.ExplorationPoint{}, err
	}
	return points[idx], nil
}

func (s *service) AddPoint(ctx context.Context, planetID string, x, y float64) (domain.ExplorationPoint, error) {
	points, err := s.Points(ctx, planetID)
	if err != nil {
		return domain.ExplorationPoint{}, err
	}

	point := domain.ExplorationPoint{
		ID:          fmt.Sprintf("%s_custom_%s", planetID, uuid.NewString()),
		PlanetID:    planetID,
		Name:        "Novo Local",
		X:           x,
		Y:           y,
		Size:        1.0,
		Active:      true,
		Description: "Uma área recém-descoberta",
	}
	points = append(points, point)

	if err := s.saveOverride(ctx, planetID, points); err != nil {
		return domain.ExplorationPoint{}, err
	}

	logger.FromContext(ctx).Info("Exploration point added",
		"planet_id", planetID, "point_id", point.ID)
	return point, nil
}

func (s *service) RemovePoint(ctx context.Context, planetID, pointID string) error {
	points, err := s.Points(ctx, planetID)
	if err != nil {
		return err
	}

	idx := indexOf(points, pointID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrPointNotFound, pointID)
	}

	points = append(points[:idx], points[idx+1:]...)
	return s.saveOverride(ctx, planetID, points)
}

func (s *service) loadOverride(ctx context.Context, planetID string) ([]domain.ExplorationPoint, error) {
	data, err := s.store.Get(ctx, overrideKey(planetID))
	if err != nil {
		if errors.Is(err, persist.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load exploration override: %w", err)
	}

	var points []domain.ExplorationPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("failed to decode exploration override: %w", err)
	}
	if len(points) == 0 {
		return nil, nil
	}
	return points, nil
}

func (s *service) saveOverride(ctx context.Context, planetID string, points []domain.ExplorationPoint) error {
	data, err := json.Marshal(points)
	if err != nil {
		return fmt.Errorf("failed to encode exploration override: %w", err)
	}
	if err := s.store.Set(ctx, overrideKey(planetID), data); err != nil {
		return fmt.Errorf("failed to save exploration override: %w", err)
	}
	s.cache.Add(planetID, clonePoints(points))
	return nil
}

func indexOf(points []domain.ExplorationPoint, pointID string) int {
	for i := range points {
		if points[i].ID == pointID {
			return i
		}
	}
	return -1
}

func clonePoints(points []domain.ExplorationPoint) []domain.ExplorationPoint {
	out := make([]domain.ExplorationPoint, len(points))
	copy(out, points)
	return out
}
