package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CraftsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsCompleted,
			Help: HelpTextCraftsCompleted,
		},
		[]string{LabelOutcome},
	)

	ItemsProduced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsProduced,
			Help: HelpTextItemsProduced,
		},
		[]string{LabelOutcome},
	)

	ItemChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemChanges,
			Help: HelpTextItemChanges,
		},
		[]string{LabelAction},
	)

	RecipeChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecipeChanges,
			Help: HelpTextRecipeChanges,
		},
		[]string{LabelAction},
	)

	InventoryUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInventoryUpdates,
			Help: HelpTextInventoryUpdates,
		},
	)
)
