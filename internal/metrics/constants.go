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
	MetricNamePurchases      = "store_purchases_total"
	MetricNameItemsUsed      = "items_used_total"
	MetricNameFishCaught     = "fish_caught_total"
	MetricNameCodesRedeemed  = "codes_redeemed_total"
	MetricNameShipsPurchased = "ships_purchased_total"
	MetricNameCheckins       = "daily_checkins_total"
	MetricNameCurrencyEarned = "currency_earned_total"
	MetricNameCurrencySpent  = "currency_spent_total"
	MetricNameSnapshotSaves  = "snapshot_saves_total"
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
	HelpTextPurchases      = "Total number of store purchases"
	HelpTextItemsUsed      = "Total number of items consumed on pets"
	HelpTextFishCaught     = "Total number of fish caught"
	HelpTextCodesRedeemed  = "Total number of redeem codes applied"
	HelpTextShipsPurchased = "Total number of ships purchased"
	HelpTextCheckins       = "Total number of daily check-ins"
	HelpTextCurrencyEarned = "Total currency credited to wallets"
	HelpTextCurrencySpent  = "Total currency debited from wallets"
	HelpTextSnapshotSaves  = "Total number of state snapshots written"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelStore    = "store"
	LabelItem     = "item"
	LabelRarity   = "rarity"
	LabelCode     = "code"
	LabelShip     = "ship"
	LabelCurrency = "currency"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
