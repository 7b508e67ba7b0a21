package config

const (
	// Snapshot key used by the persistence gateway
	SnapshotKey = "xenopets-game-store-v2"

	// Per-planet exploration override key prefix
	ExplorationKeyPrefix = "explorationPoints_"
)
