// Package game owns the per-session game state and every guarded transaction
// over it: wallet mutations, store purchases, item use, redeem codes, ships,
// pets, notifications and hatching. All mutations confirm with the remote
// game service first, then commit locally and snapshot through the
// persistence gateway.
package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xenopets/XenoPets_Go/internal/clock"
	"github.com/xenopets/XenoPets_Go/internal/domain"
	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/gamedata"
	"github.com/xenopets/XenoPets_Go/internal/logger"
	"github.com/xenopets/XenoPets_Go/internal/persist"
	"github.com/xenopets/XenoPets_Go/internal/remote"
)

// RedeemResult summarizes a successful code redemption.
type RedeemResult struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Applied []string `json:"applied"`
	Skipped []string `json:"skipped,omitempty"`
}

// CheckinResult reports a daily check-in outcome.
type CheckinResult struct {
	Streak      int  `json:"streak"`
	Reward      int  `json:"reward"`
	WeeklyBonus bool `json:"weeklyBonus"`
}

// Service is the transactional game engine over a single session's state.
type Service interface {
	// Session
	SetUser(ctx context.Context, user *domain.User) error
	CurrentUser() *domain.User
	InitializeNewUser(ctx context.Context, user domain.User) error
	LoadUserData(ctx context.Context, userID string) error
	Restore(ctx context.Context, sessionUserID string) (bool, error)
	SaveSnapshot(ctx context.Context) error

	// Wallet
	Balance(kind domain.CurrencyKind) int
	UpdateCurrency(ctx context.Context, kind domain.CurrencyKind, delta int, reason string) (int, error)

	// Stores
	Stores() []domain.Store
	StoreByID(storeID string) (domain.Store, bool)
	Purchase(ctx context.Context, storeID, storeItemID string, quantity int) (*domain.PurchaseResult, error)
	RestockStores(ctx context.Context) int

	// Inventory
	Inventory() []domain.InventoryStack
	AddToInventory(ctx context.Context, item domain.Item, quantity int) (string, error)
	RemoveFromInventory(ctx context.Context, inventoryID string, quantity int) bool
	UseItem(ctx context.Context, inventoryID, petID string) error

	// Redeem codes
	RedeemCode(ctx context.Context, code string) (*RedeemResult, error)
	CreateRedeemCode(ctx context.Context, code domain.RedeemCode) error
	DeactivateRedeemCode(ctx context.Context, codeID string) error
	RedeemCodes() []domain.RedeemCode

	// Ships
	Ships() []domain.Ship
	OwnedShips() []domain.Ship
	ActiveShip() *domain.Ship
	PurchaseShip(ctx context.Context, shipID string) error
	SwitchActiveShip(ctx context.Context, shipID string) error

	// Notifications
	Notifications() []domain.Notification
	AddNotification(ctx context.Context, typ domain.NotificationType, title, message string)
	MarkNotificationRead(ctx context.Context, id string) bool
	MarkAllNotificationsRead(ctx context.Context)
	DeleteNotification(ctx context.Context, id string) bool
	ClearNotifications(ctx context.Context)

	// Pets
	Pets() []domain.Pet
	ActivePet() *domain.Pet
	CreatePet(ctx context.Context, pet domain.Pet) (*domain.Pet, error)
	UpdatePetStats(ctx context.Context, petID string, deltas map[string]int) (*domain.Pet, error)
	SetActivePet(ctx context.Context, petID string) error

	// Hatching
	StartHatching(ctx context.Context, eggType string) (*domain.HatchingEgg, error)
	HatchingEgg() *domain.HatchingEgg
	HatchingTimeRemaining() time.Duration
	ClearHatching(ctx context.Context)

	// Achievements and collectibles
	Achievements() []domain.Achievement
	Collectibles() []domain.Collectible
	CollectCollectible(ctx context.Context, collectible domain.Collectible) error
	CollectiblePoints() int

	// Players
	SearchPlayers(ctx context.Context, query string) ([]domain.PlayerProfile, error)
	GetPlayerProfile(ctx context.Context, userID string) (*domain.PlayerProfile, error)

	// Daily check-in
	DailyCheckin(ctx context.Context) (*CheckinResult, error)
}

type service struct {
	mu     sync.Mutex
	state  *domain.GameState
	stores map[string]*domain.Store

	catalog *gamedata.Catalog
	remote  remote.Service
	gateway *persist.Gateway
	kv      persist.Store
	clock   clock.Clock
	events  event.Bus
}

// NewService creates the game engine. The kv store backs small per-user
// records (check-in streaks) outside the snapshot.
func NewService(catalog *gamedata.Catalog, remoteSvc remote.Service, gateway *persist.Gateway, kv persist.Store, clk clock.Clock, bus event.Bus) Service {
	s := &service{
		state:   domain.NewGameState(),
		stores:  make(map[string]*domain.Store),
		catalog: catalog,
		remote:  remoteSvc,
		gateway: gateway,
		kv:      kv,
		clock:   clk,
		events:  bus,
	}
	s.resetStoresLocked()
	return s
}

// resetStoresLocked rebuilds the runtime stock copies from the catalog.
func (s *service) resetStoresLocked() {
	s.stores = make(map[string]*domain.Store)
	for _, def := range s.catalog.Stores() {
		store, _ := s.catalog.Store(def.ID)
		s.stores[store.ID] = &store
	}
}

// requireUserLocked returns the logged-in user or ErrNotLoggedIn.
func (s *service) requireUserLocked() (*domain.User, error) {
	if s.state.User == nil {
		return nil, domain.ErrNotLoggedIn
	}
	return s.state.User, nil
}

// notifyLocked prepends a notification, evicting beyond the cap.
func (s *service) notifyLocked(typ domain.NotificationType, title, message string) {
	n := domain.Notification{
		ID:        newID(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: s.clock.Now(),
	}
	s.state.Notifications = append([]domain.Notification{n}, s.state.Notifications...)
	if len(s.state.Notifications) > domain.MaxNotifications {
		s.state.Notifications = s.state.Notifications[:domain.MaxNotifications]
	}
}

// saveLocked snapshots state through the gateway. Persistence failures are
// logged, never propagated; the in-memory state is already committed.
func (s *service) saveLocked(ctx context.Context) {
	if s.gateway == nil {
		return
	}
	if err := s.gateway.Save(ctx, s.state); err != nil {
		logger.FromContext(ctx).Warn("Snapshot save failed", "error", err)
	}
}

func newID() string {
	return uuid.NewString()
}

// publish emits an event best-effort.
func (s *service) publish(ctx context.Context, e event.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "event_type", e.Type, "error", err)
	}
}
