package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameCraftsCompleted  = "crafts_completed_total"
	MetricNameItemsProduced    = "craft_result_lines_total"
	MetricNameItemChanges      = "item_changes_total"
	MetricNameRecipeChanges    = "recipe_changes_total"
	MetricNameInventoryUpdates = "inventory_updates_total"
)

// Gauge metric names backed by live state
const (
	MetricNameCacheHits    = "query_cache_hits_total"
	MetricNameCacheMisses  = "query_cache_misses_total"
	MetricNameCacheEntries = "query_cache_entries"
	MetricNameSSEClients   = "sse_clients"
	MetricNameSSEDropped   = "sse_dropped_events_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextCraftsCompleted  = "Total number of committed crafts by outcome"
	HelpTextItemsProduced    = "Total number of result lines applied by committed crafts"
	HelpTextItemChanges      = "Total number of catalog writes by action"
	HelpTextRecipeChanges    = "Total number of recipe writes by action"
	HelpTextInventoryUpdates = "Total number of quantity changes"
)

// Live state help text
const (
	HelpTextCacheHits    = "Query cache hits"
	HelpTextCacheMisses  = "Query cache misses"
	HelpTextCacheEntries = "Entries currently held by the query cache"
	HelpTextSSEClients   = "Connected change feed clients"
	HelpTextSSEDropped   = "Change feed deliveries skipped because a buffer was full"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelAction  = "action"
)

// UnmatchedRoute labels requests chi could not route
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
