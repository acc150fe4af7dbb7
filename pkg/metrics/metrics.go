package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simpledebts_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "simpledebts_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	DebtTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simpledebts_debt_transitions_total",
			Help: "Debt lifecycle transitions that were committed",
		},
		[]string{"transition"},
	)

	OperationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simpledebts_operation_transitions_total",
			Help: "Operation lifecycle transitions that were committed",
		},
		[]string{"transition"},
	)

	AssetDeletions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simpledebts_asset_deletions_total",
			Help: "Asset deletion attempts by result",
		},
		[]string{"result"},
	)

	OrphanUsersRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "simpledebts_orphan_virtual_users_removed_total",
			Help: "Virtual users removed by the orphan sweep",
		},
	)
)

func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordDebtTransition(transition string) {
	DebtTransitions.WithLabelValues(transition).Inc()
}

func RecordOperationTransition(transition string) {
	OperationTransitions.WithLabelValues(transition).Inc()
}
