package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Common event types
const (
	PurchaseCompleted  Type = "purchase.completed"
	ItemUsed           Type = "item.used"
	FishCaught         Type = "fish.caught"
	CodeRedeemed       Type = "code.redeemed"
	ShipPurchased      Type = "ship.purchased"
	CheckinCompleted   Type = "checkin.completed"
	CurrencyChanged    Type = "currency.changed"
	EggHatchingStarted Type = "egg.hatching.started"
	EggHatched         Type = "egg.hatched"
)

// Typed event payloads for type safety

// PurchasePayloadV1 is the typed payload for store purchase events
type PurchasePayloadV1 struct {
	UserID    string `json:"user_id"`
	StoreID   string `json:"store_id"`
	ItemSlug  string `json:"item_slug"`
	Quantity  int    `json:"quantity"`
	TotalCost int    `json:"total_cost"`
	Currency  string `json:"currency"`
	Timestamp int64  `json:"timestamp"`
}

// ItemUsedPayloadV1 is the typed payload for item consumption events
type ItemUsedPayloadV1 struct {
	UserID    string `json:"user_id"`
	ItemSlug  string `json:"item_slug"`
	PetID     string `json:"pet_id"`
	Timestamp int64  `json:"timestamp"`
}

// FishCaughtPayloadV1 is the typed payload for fish catch events
type FishCaughtPayloadV1 struct {
	UserID    string `json:"user_id"`
	Species   string `json:"species"`
	Size      int    `json:"size"`
	Rarity    string `json:"rarity"`
	Timestamp int64  `json:"timestamp"`
}

// CodeRedeemedPayloadV1 is the typed payload for redeem code events
type CodeRedeemedPayloadV1 struct {
	UserID    string `json:"user_id"`
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
}

// ShipPurchasedPayloadV1 is the typed payload for ship purchase events
type ShipPurchasedPayloadV1 struct {
	UserID    string `json:"user_id"`
	ShipID    string `json:"ship_id"`
	Price     int    `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// CheckinPayloadV1 is the typed payload for daily check-in events
type CheckinPayloadV1 struct {
	UserID    string `json:"user_id"`
	Streak    int    `json:"streak"`
	Reward    int    `json:"reward"`
	Timestamp int64  `json:"timestamp"`
}

// CurrencyChangedPayloadV1 is the typed payload for wallet mutation events
type CurrencyChangedPayloadV1 struct {
	UserID     string `json:"user_id"`
	Currency   string `json:"currency"`
	Delta      int    `json:"delta"`
	NewBalance int    `json:"new_balance"`
	Timestamp  int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewPurchaseEvent creates a new purchase completed event
func NewPurchaseEvent(userID, storeID, itemSlug string, quantity, totalCost int, currency string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PurchaseCompleted,
		Payload: PurchasePayloadV1{
			UserID:    userID,
			StoreID:   storeID,
			ItemSlug:  itemSlug,
			Quantity:  quantity,
			TotalCost: totalCost,
			Currency:  currency,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewItemUsedEvent creates a new item used event
func NewItemUsedEvent(userID, itemSlug, petID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemUsed,
		Payload: ItemUsedPayloadV1{
			UserID:    userID,
			ItemSlug:  itemSlug,
			PetID:     petID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewFishCaughtEvent creates a new fish caught event
func NewFishCaughtEvent(userID, species string, size int, rarity string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    FishCaught,
		Payload: FishCaughtPayloadV1{
			UserID:    userID,
			Species:   species,
			Size:      size,
			Rarity:    rarity,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCodeRedeemedEvent creates a new code redeemed event
func NewCodeRedeemedEvent(userID, code string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CodeRedeemed,
		Payload: CodeRedeemedPayloadV1{
			UserID:    userID,
			Code:      code,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewShipPurchasedEvent creates a new ship purchased event
func NewShipPurchasedEvent(userID, shipID string, price int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShipPurchased,
		Payload: ShipPurchasedPayloadV1{
			UserID:    userID,
			ShipID:    shipID,
			Price:     price,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCheckinEvent creates a new daily check-in event
func NewCheckinEvent(userID string, streak, reward int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CheckinCompleted,
		Payload: CheckinPayloadV1{
			UserID:    userID,
			Streak:    streak,
			Reward:    reward,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCurrencyChangedEvent creates a new wallet mutation event
func NewCurrencyChangedEvent(userID, currency string, delta, newBalance int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CurrencyChanged,
		Payload: CurrencyChangedPayloadV1{
			UserID:     userID,
			Currency:   currency,
			Delta:      delta,
			NewBalance: newBalance,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a failing handler never blocks the others.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
