package exploration

import (
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/rng"
)

// Theme sets of point names. The planet seed selects one set; every planet
// gets five points unless it has a hand-authored layout.
var pointTemplates = [][]string{
	// Geological features
	{"Cratera Meteórica", "Formação Vulcânica", "Mesa Rochosa", "Cânion Profundo", "Campo de Lava"},
	// Crystal formations
	{"Cavernas Cristalinas", "Jardim de Quartzo", "Depósitos Minerais", "Geodo Gigante", "Cristais Luminosos"},
	// Water and ice features
	{"Lagos Congelados", "Fontes Termais", "Geleiras Antigas", "Oásis Mineral", "Rios Subterrâneos"},
	// Underground features
	{"Túneis Profundos", "Cavernas Ecoantes", "Abismo Sem Fim", "Galerias Minerais", "Labirinto Subterrâneo"},
	// Atmospheric features
	{"Vale dos Ventos", "Planalto Nebuloso", "Picos Nevados", "Desfiladeiro Sombrio", "Planície Dourada"},
	// Organic features
	{"Floresta Petrificada", "Jardim de Esporos", "Bosque Cristalizado", "Pântano Fóssil", "Recife Mineral"},
	// Energy features
	{"Campo Magnético", "Zona Radioativa", "Núcleo Energético", "Fonte de Plasma", "Portal Dimensional"},
	// Ancient features
	{"Ruínas Antigas", "Monólitos Perdidos", "Templo Esquecido", "Artefatos Alienígenas", "Cidade Abandonada"},
}

// Fixed point positions on the 0-100 surface grid, index-aligned with the
// selected name set.
var pointPositions = []domain.Position{
	{X: 20, Y: 30},
	{X: 70, Y: 25},
	{X: 45, Y: 60},
	{X: 80, Y: 70},
	{X: 25, Y: 80},
}

// AncestralVillagePlanetID has a hand-authored layout instead of the
// generic algorithm.
const AncestralVillagePlanetID = "planet-5"

// Generate produces the point layout for a planet. The output depends only
// on the planet identifier: same input, same names, same positions.
func Generate(planetID string) []domain.ExplorationPoint {
	if planetID == AncestralVillagePlanetID {
		return ancestralVillageLayout(planetID)
	}

	seed := rng.SeedFromString(planetID)
	names := pointTemplates[seed%uint64(len(pointTemplates))]

	points := make([]domain.ExplorationPoint, 0, len(names))
	for i, name := range names {
		point := domain.ExplorationPoint{
			ID:          fmt.Sprintf("%s_point_%d", planetID, i+1),
			PlanetID:    planetID,
			Name:        name,
			X:           pointPositions[i].X,
			Y:           pointPositions[i].Y,
			Size:        1.0,
			Active:      true,
			Description: fmt.Sprintf("Uma área fascinante conhecida como %s. Este local oferece uma experiência única de exploração.", name),
		}

		// A couple of named locations carry bespoke presentation.
		switch name {
		case "Planície Dourada":
			point.Size = 0.7
			point.Description = ""
		case "Túneis Profundos":
			point.Description = "Túneis profundos que se estendem nas profundezas do planeta, lar de mistérios antigos e tecnologias perdidas."
		}

		points = append(points, point)
	}
	return points
}

func ancestralVillageLayout(planetID string) []domain.ExplorationPoint {
	return []domain.ExplorationPoint{
		{
			ID:          planetID + "_point_1",
			PlanetID:    planetID,
			Name:        "Santuário dos Ovos",
			X:           45,
			Y:           35,
			Size:        1.2,
			Active:      true,
			Description: "O sagrado Santuário dos Ovos Ancestrais, onde os ovos aguardam seus companheiros destinados.",
		},
		{
			ID:          planetID + "_point_2",
			PlanetID:    planetID,
			Name:        "Templo dos Anciões",
			X:           25,
			Y:           65,
			Size:        1.0,
			Active:      true,
			Description: "Um antigo templo onde os sábios da Vila Ancestral compartilham conhecimento.",
		},
		{
			ID:          planetID + "_point_3",
			PlanetID:    planetID,
			Name:        "Jardins Sagrados",
			X:           70,
			Y:           50,
			Size:        0.9,
			Active:      true,
			Description: "Jardins místicos onde a energia ancestral flui livremente.",
		},
	}
}

// BuildArea derives the interior view for a point.
func BuildArea(point domain.ExplorationPoint) domain.ExplorationArea {
	if point.Name == "Planície Dourada" {
		return domain.ExplorationArea{
			ID:      point.ID + "_area",
			PointID: point.ID,
			Name:    point.Name,
			ImageURL: point.ImageURL,
		}
	}
	return domain.ExplorationArea{
		ID:          point.ID + "_area",
		PointID:     point.ID,
		Name:        "Interior de " + point.Name,
		Description: fmt.Sprintf("Vista detalhada de %s. %s", point.Name, point.Description),
		ImageURL:    point.ImageURL,
	}
}
