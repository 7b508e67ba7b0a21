package fishing

import (
	"github.com/xenopets/XenoPets_Go/internal/domain"
)

// RollSize draws a size from the species' discrete probability table using a
// uniform sample u in [0, 1). Sizes are accumulated in ascending order; if
// the table underflows (probabilities summing below u) the minimum size is
// returned.
func RollSize(species domain.FishSpecies, u float64) int {
	var accumulator float64
	for size := species.MinSize; size <= species.MaxSize; size++ {
		p, ok := species.SizeProbs[size]
		if !ok {
			continue
		}
		accumulator += p
		if u <= accumulator {
			return size
		}
	}
	return species.MinSize
}

// RarityForSize grades a specimen by where its size falls in the species
// range. The thresholds are percentiles of (size - min) / (max - min).
func RarityForSize(species domain.FishSpecies, size int) domain.Rarity {
	sizeRange := species.MaxSize - species.MinSize
	if sizeRange <= 0 {
		return domain.RarityCommon
	}
	percentile := float64(size-species.MinSize) / float64(sizeRange)

	switch {
	case percentile >= 0.9:
		return domain.RarityLegendary
	case percentile >= 0.7:
		return domain.RarityEpic
	case percentile >= 0.5:
		return domain.RarityRare
	case percentile >= 0.3:
		return domain.RarityUncommon
	default:
		return domain.RarityCommon
	}
}
