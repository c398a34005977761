package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CraftLedger_Go/internal/domain"
	"github.com/osse101/CraftLedger_Go/internal/logger"
)

// Type represents the type of an event
type Type string

// Change feed event types
const (
	ItemsChanged     Type = domain.EventTypeItemsChanged
	InventoryChanged Type = domain.EventTypeInventoryChanged
	RecipesChanged   Type = domain.EventTypeRecipesChanged
	CraftCompleted   Type = domain.EventTypeCraftCompleted
)

// AllTypes lists every event type the application publishes
var AllTypes = []Type{ItemsChanged, InventoryChanged, RecipesChanged, CraftCompleted}

// Event represents a committed change in the system
type Event struct {
	Version   string      `json:"version"`
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now().Unix(),
	}
}

// NewItemChangedEvent creates an items.changed event
func NewItemChangedEvent(itemID int, action string) Event {
	return newEvent(ItemsChanged, domain.ItemChangedPayload{ItemID: itemID, Action: action})
}

// NewInventoryChangedEvent creates an inventory.changed event
func NewInventoryChangedEvent(itemID, amount int) Event {
	return newEvent(InventoryChanged, domain.InventoryChangedPayload{ItemID: itemID, Amount: amount})
}

// NewRecipeChangedEvent creates a recipes.changed event
func NewRecipeChangedEvent(recipeID int, action string) Event {
	return newEvent(RecipesChanged, domain.RecipeChangedPayload{RecipeID: recipeID, Action: action})
}

// NewCraftCompletedEvent creates a craft.completed event from a committed craft
func NewCraftCompletedEvent(result domain.CraftResult) Event {
	return newEvent(CraftCompleted, domain.CraftCompletedPayload{
		RecipeID: result.RecipeID,
		Outcome:  result.Outcome,
		Consumed: len(result.Consumed),
		Produced: len(result.Produced),
	})
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

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

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

// PublishAfterCommit publishes evt and logs a failure instead of returning it.
// The write it describes is already committed. A nil bus is ignored.
func PublishAfterCommit(ctx context.Context, bus Bus, evt Event) {
	if bus == nil {
		return
	}
	if err := bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
