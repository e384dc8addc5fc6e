package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	startTime = time.Now()

	// RemoteOperationsTotal counts client calls to the action management
	// service, by operation and outcome.
	RemoteOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "actionq",
		Subsystem: "client",
		Name:      "remote_operations_total",
		Help:      "Total remote action-queue operations issued",
	}, []string{"operation", "outcome"})

	// RemoteOperationDuration tracks the latency of remote operations
	RemoteOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "actionq",
		Subsystem: "client",
		Name:      "remote_operation_duration_seconds",
		Help:      "Remote operation duration in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	// UptimeSeconds tracks the action server uptime in seconds
	UptimeSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "actionq",
		Subsystem: "server",
		Name:      "uptime_seconds",
		Help:      "The uptime of the action server in seconds",
	})

	// HTTPRequestsTotal counts HTTP requests handled by the action server
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "actionq",
		Subsystem: "server",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "endpoint", "status"})
)

// TrackRemoteOperation records one client call. Use the returned func to
// report the outcome:
//
//	done := metrics.TrackRemoteOperation("queueActions")
//	defer func() { done(err) }()
func TrackRemoteOperation(operation string) func(error) {
	start := time.Now()
	return func(err error) {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		RemoteOperationsTotal.WithLabelValues(operation, outcome).Inc()
		RemoteOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// StartUptimeTracking updates the uptime gauge every 10 seconds.
func StartUptimeTracking() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			UptimeSeconds.Set(time.Since(startTime).Seconds())
		}
	}()
}
