package exploration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Determinism(t *testing.T) {
	t.Run("same planet always yields identical layout", func(t *testing.T) {
		first := Generate("planet-3")
		second := Generate("planet-3")

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
			assert.Equal(t, first[i].Name, second[i].Name)
			assert.Equal(t, first[i].X, second[i].X)
			assert.Equal(t, first[i].Y, second[i].Y)
		}
	})

	t.Run("names come from a single theme set", func(t *testing.T) {
		points := Generate("planet-3")
		require.Len(t, points, 5)

		found := false
		for _, set := range pointTemplates {
			matches := 0
			for i, name := range set {
				if points[i].Name == name {
					matches++
				}
			}
			if matches == len(set) {
				found = true
			}
		}
		assert.True(t, found, "all five names should come from one template set in order")
	})

	t.Run("positions follow the fixed table", func(t *testing.T) {
		points := Generate("planet-9")
		require.Len(t, points, 5)
		for i, point := range points {
			assert.Equal(t, pointPositions[i].X, point.X)
			assert.Equal(t, pointPositions[i].Y, point.Y)
			assert.GreaterOrEqual(t, point.X, 0.0)
			assert.LessOrEqual(t, point.X, 100.0)
		}
	})

	t.Run("ids are planet-scoped and ordinal", func(t *testing.T) {
		points := Generate("planet-7")
		assert.Equal(t, "planet-7_point_1", points[0].ID)
		assert.Equal(t, "planet-7_point_5", points[4].ID)
	})

	t.Run("all generated points start active and undiscovered", func(t *testing.T) {
		for _, point := range Generate("planet-2") {
			assert.True(t, point.Active)
			assert.False(t, point.Discovered)
		}
	})
}

func TestGenerate_AncestralVillage(t *testing.T) {
	points := Generate(AncestralVillagePlanetID)

	require.Len(t, points, 3, "the ancestral village has a hand-authored layout")
	assert.Equal(t, "Santuário dos Ovos", points[0].Name)
	assert.Equal(t, 1.2, points[0].Size)
	assert.Equal(t, "Templo dos Anciões", points[1].Name)
	assert.Equal(t, "Jardins Sagrados", points[2].Name)
	assert.Equal(t, 45.0, points[0].X)
	assert.Equal(t, 35.0, points[0].Y)
}

func TestGenerate_SpecialNames(t *testing.T) {
	// Find a planet whose theme set includes the special names, then verify
	// their bespoke presentation.
	var goldenSeen, tunnelsSeen bool
	for _, planetID := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		for _, point := range Generate(planetID) {
			switch point.Name {
			case "Planície Dourada":
				goldenSeen = true
				assert.Equal(t, 0.7, point.Size, "golden plain renders smaller")
				assert.Empty(t, point.Description)
			case "Túneis Profundos":
				tunnelsSeen = true
				assert.Contains(t, point.Description, "profundezas")
			}
		}
	}
	assert.True(t, goldenSeen, "eight single-rune planets cover all eight theme sets")
	assert.True(t, tunnelsSeen)
}

func TestBuildArea(t *testing.T) {
	t.Run("default area wraps the point", func(t *testing.T) {
		points := Generate("planet-3")
		area := BuildArea(points[0])

		assert.Equal(t, points[0].ID+"_area", area.ID)
		assert.Equal(t, points[0].ID, area.PointID)
		assert.Equal(t, "Interior de "+points[0].Name, area.Name)
		assert.Contains(t, area.Description, points[0].Name)
	})

	t.Run("golden plain area keeps the bare name", func(t *testing.T) {
		var area bool
		for _, planetID := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
			for _, point := range Generate(planetID) {
				if point.Name == "Planície Dourada" {
					got := BuildArea(point)
					assert.Equal(t, "Planície Dourada", got.Name)
					assert.Empty(t, got.Description)
					area = true
				}
			}
		}
		assert.True(t, area)
	})
}
