package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/CraftLedger_Go/internal/cache"
	"github.com/osse101/CraftLedger_Go/internal/event"
	"github.com/osse101/CraftLedger_Go/internal/metrics"
	"github.com/osse101/CraftLedger_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	SSEHub   *sse.Hub
	Cache    *cache.QueryCache
	// Registerer defaults to prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
}

// RegisterEventHandlers sets up all event subscribers:
// - SSE subscriber (forwards the change feed to connected clients)
// - Metrics collector (event-based counters)
// - State collectors (cache and SSE gauges read at scrape time)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	reg := deps.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	var hub metrics.SSEStats
	if deps.SSEHub != nil {
		hub = deps.SSEHub
	}
	if err := metrics.RegisterStateCollectors(reg, deps.Cache, hub); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterCollectors, err)
	}
	slog.Info(LogMsgStateCollectorsRegistered)

	return nil
}

// InitializeEventSystem creates the in-process bus and starts the SSE hub
func InitializeEventSystem() (event.Bus, *sse.Hub) {
	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	slog.Info(LogMsgEventSystemInitialized)
	return bus, hub
}
