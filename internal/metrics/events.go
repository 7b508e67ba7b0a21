package metrics

import (
	"context"

	"github.com/xenopets/XenoPets_Go/internal/event"
	"github.com/xenopets/XenoPets_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PurchaseCompleted,
		event.ItemUsed,
		event.FishCaught,
		event.CodeRedeemed,
		event.ShipPurchased,
		event.CheckinCompleted,
		event.CurrencyChanged,
		event.EggHatchingStarted,
		event.EggHatched,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.PurchaseCompleted:
		payload, err := event.DecodePayload[event.PurchasePayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		Purchases.WithLabelValues(payload.StoreID, payload.ItemSlug).Inc()

	case event.ItemUsed:
		payload, err := event.DecodePayload[event.ItemUsedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ItemsUsed.WithLabelValues(payload.ItemSlug).Inc()

	case event.FishCaught:
		payload, err := event.DecodePayload[event.FishCaughtPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		FishCaught.WithLabelValues(payload.Rarity).Inc()

	case event.CodeRedeemed:
		payload, err := event.DecodePayload[event.CodeRedeemedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CodesRedeemed.WithLabelValues(payload.Code).Inc()

	case event.ShipPurchased:
		payload, err := event.DecodePayload[event.ShipPurchasedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		ShipsPurchased.WithLabelValues(payload.ShipID).Inc()

	case event.CheckinCompleted:
		Checkins.Inc()

	case event.CurrencyChanged:
		payload, err := event.DecodePayload[event.CurrencyChangedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		if payload.Delta >= 0 {
			CurrencyEarned.WithLabelValues(payload.Currency).Add(float64(payload.Delta))
		} else {
			CurrencySpent.WithLabelValues(payload.Currency).Add(float64(-payload.Delta))
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
