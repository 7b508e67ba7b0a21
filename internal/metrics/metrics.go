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
	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelStore, LabelItem},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	FishCaught = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFishCaught,
			Help: HelpTextFishCaught,
		},
		[]string{LabelRarity},
	)

	CodesRedeemed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCodesRedeemed,
			Help: HelpTextCodesRedeemed,
		},
		[]string{LabelCode},
	)

	ShipsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShipsPurchased,
			Help: HelpTextShipsPurchased,
		},
		[]string{LabelShip},
	)

	Checkins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCheckins,
			Help: HelpTextCheckins,
		},
	)

	CurrencyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencyEarned,
			Help: HelpTextCurrencyEarned,
		},
		[]string{LabelCurrency},
	)

	CurrencySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCurrencySpent,
			Help: HelpTextCurrencySpent,
		},
		[]string{LabelCurrency},
	)

	SnapshotSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotSaves,
			Help: HelpTextSnapshotSaves,
		},
	)
)
