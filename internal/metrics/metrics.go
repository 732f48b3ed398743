package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gateway metrics for production monitoring
var (
	// Chat metrics
	ChatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adbot_chat_requests_total",
			Help: "Total number of chat requests handled",
		},
		[]string{"source", "status"}, // source: upstream/fallback/none, status: ok/invalid
	)

	ChatRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adbot_chat_request_duration_seconds",
			Help:    "End-to-end chat request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~1min
		},
		[]string{"source"},
	)

	// Quota metrics
	QuotaThrottledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adbot_quota_throttled_total",
			Help: "Total number of chat requests denied upstream admission",
		},
	)

	// Upstream metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adbot_upstream_requests_total",
			Help: "Total number of upstream generation calls",
		},
		[]string{"status"}, // status: ok/rate_limited/error
	)

	UpstreamRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adbot_upstream_request_duration_seconds",
			Help:    "Upstream generation call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	// Pricing metrics
	PricingEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adbot_pricing_estimates_total",
			Help: "Total number of pricing estimates computed",
		},
		[]string{"plan"},
	)

	// Lead metrics
	LeadsCapturedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adbot_leads_captured_total",
			Help: "Total number of demo requests stored",
		},
	)

	// WebSocket metrics
	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "adbot_websocket_connections",
			Help: "Current number of active WebSocket chat connections",
		},
	)

	WebSocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adbot_websocket_messages_total",
			Help: "Total number of WebSocket chat messages",
		},
		[]string{"direction"}, // direction: inbound/outbound
	)
)
