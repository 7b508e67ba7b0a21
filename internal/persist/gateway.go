package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// snapshot is the durable subset of game state. Fields are enumerated
// explicitly; ephemeral UI state never reaches storage.
type snapshot struct {
	User          *domain.User         `json:"user"`
	ActivePet     *domain.Pet          `json:"activePet"`
	Pets          []domain.Pet         `json:"pets"`
	Inventory     domain.Inventory     `json:"inventory"`
	Xenocoins     int                  `json:"xenocoins"`
	Cash          int                  `json:"cash"`
	Notifications []domain.Notification `json:"notifications"`
	Language      string               `json:"language"`
	CurrentScreen string               `json:"currentScreen"`
	Achievements  []domain.Achievement `json:"achievements"`
	Collectibles  []domain.Collectible `json:"collectibles"`
	RedeemCodes   []domain.RedeemCode  `json:"redeemCodes"`
	HatchingEgg   *domain.HatchingEgg  `json:"hatchingEgg"`
	Ships         []domain.Ship        `json:"ships"`
	OwnedShips    []domain.Ship        `json:"ownedShips"`
	ActiveShip    *domain.Ship         `json:"activeShip"`
}

// Gateway saves and restores game-state snapshots through a Store.
type Gateway struct {
	store Store
	key   string
}

// NewGateway creates a Gateway writing snapshots under the given key.
func NewGateway(store Store, key string) *Gateway {
	return &Gateway{store: store, key: key}
}

// Save serializes the durable subset of state and writes it to the store.
func (g *Gateway) Save(ctx context.Context, state *domain.GameState) error {
	snap := snapshot{
		User:          state.User,
		ActivePet:     state.ActivePet,
		Pets:          state.Pets,
		Inventory:     state.Inventory,
		Xenocoins:     state.Xenocoins,
		Cash:          state.Cash,
		Notifications: state.Notifications,
		Language:      state.Language,
		CurrentScreen: state.CurrentScreen,
		Achievements:  state.Achievements,
		Collectibles:  state.Collectibles,
		RedeemCodes:   state.RedeemCodes,
		HatchingEgg:   state.HatchingEgg,
		Ships:         state.Ships,
		OwnedShips:    state.OwnedShips,
		ActiveShip:    state.ActiveShip,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	if err := g.store.Set(ctx, g.key, data); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Load reads back the snapshot, rehydrates timestamps in dynamic subtrees
// and enforces cross-user invariants. A missing snapshot returns (nil, nil).
//
// An in-progress hatching egg belonging to a different user than the one
// restoring the session is discarded, never resumed.
func (g *Gateway) Load(ctx context.Context, sessionUserID string) (*domain.GameState, error) {
	data, err := g.store.Get(ctx, g.key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	state := domain.NewGameState()
	state.User = snap.User
	state.ActivePet = snap.ActivePet
	state.Xenocoins = snap.Xenocoins
	state.Cash = snap.Cash
	state.HatchingEgg = snap.HatchingEgg
	state.ActiveShip = snap.ActiveShip
	if snap.Pets != nil {
		state.Pets = snap.Pets
	}
	if snap.Inventory.Stacks != nil {
		state.Inventory = snap.Inventory
	}
	if snap.Notifications != nil {
		state.Notifications = snap.Notifications
	}
	if snap.Achievements != nil {
		state.Achievements = snap.Achievements
	}
	if snap.Collectibles != nil {
		state.Collectibles = snap.Collectibles
	}
	if snap.RedeemCodes != nil {
		state.RedeemCodes = snap.RedeemCodes
	}
	if snap.Ships != nil {
		state.Ships = snap.Ships
	}
	if snap.OwnedShips != nil {
		state.OwnedShips = snap.OwnedShips
	}
	if snap.Language != "" {
		state.Language = snap.Language
	}
	if snap.CurrentScreen != "" {
		state.CurrentScreen = snap.CurrentScreen
	}

	// Typed fields rehydrate through encoding/json. Dynamic subtrees still
	// carry timestamp strings and go through the codec.
	if state.HatchingEgg != nil && state.HatchingEgg.Metadata != nil {
		state.HatchingEgg.Metadata = Rehydrate(state.HatchingEgg.Metadata).(map[string]any)
	}

	if state.HatchingEgg != nil && state.HatchingEgg.UserID != sessionUserID {
		logger.FromContext(ctx).Warn("Discarding hatching egg from another session",
			"egg_user_id", state.HatchingEgg.UserID,
			"session_user_id", sessionUserID)
		state.HatchingEgg = nil
	}

	return state, nil
}
