// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers publish and sweep metrics. It satisfies the metrics
// hook of the publish engine.
type Collector struct {
	publishOutcomes *prometheus.CounterVec
	sweepRuns       *prometheus.CounterVec
	sweepDuration   *prometheus.HistogramVec
	notifications   *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		publishOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orchestrator_publish_attempts_total",
			Help: "Publish attempts by platform and outcome.",
		}, []string{"platform", "outcome"}),
		sweepRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orchestrator_sweep_runs_total",
			Help: "Sweep runs by trigger and status.",
		}, []string{"trigger", "status"}),
		sweepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "orchestrator_sweep_duration_seconds",
			Help:    "Sweep run duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"trigger"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orchestrator_notifications_total",
			Help: "Notification events published by event type.",
		}, []string{"event"}),
	}

	reg.MustRegister(
		c.publishOutcomes,
		c.sweepRuns,
		c.sweepDuration,
		c.notifications,
	)

	return c
}

// RecordPublishOutcome counts one settled publish attempt.
func (c *Collector) RecordPublishOutcome(platform string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	c.publishOutcomes.WithLabelValues(platform, outcome).Inc()
}

// RecordSweepRun counts one finished trigger run.
func (c *Collector) RecordSweepRun(trigger string, failed bool, duration time.Duration) {
	status := "completed"
	if failed {
		status = "failed"
	}
	c.sweepRuns.WithLabelValues(trigger, status).Inc()
	c.sweepDuration.WithLabelValues(trigger).Observe(duration.Seconds())
}

// RecordNotification counts one published notification event.
func (c *Collector) RecordNotification(event string) {
	c.notifications.WithLabelValues(event).Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
