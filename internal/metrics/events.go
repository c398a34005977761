package metrics

import (
	"context"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/event"
	"github.com/osse101/CraftLedger_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all change feed events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case domain.CraftCompletedPayload:
		CraftsCompleted.WithLabelValues(string(p.Outcome)).Inc()
		ItemsProduced.WithLabelValues(string(p.Outcome)).Add(float64(p.Produced))
	case domain.ItemChangedPayload:
		ItemChanges.WithLabelValues(p.Action).Inc()
	case domain.RecipeChangedPayload:
		RecipeChanges.WithLabelValues(p.Action).Inc()
	case domain.InventoryChangedPayload:
		InventoryUpdates.Inc()
	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
