// Package metrics exposes Prometheus counters for the change-tracking pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "customtrack"

// Result label values.
const (
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
	ResultSkipped   = "skipped"
	ResultOK        = "ok"
	ResultError     = "error"
)

// Collector is a prometheus.Collector for the change-tracking pipeline.
// A nil *Collector is valid and records nothing.
type Collector struct {
	auditRecords       *prometheus.CounterVec
	dispatchTotal      *prometheus.CounterVec
	dispatchDuration   *prometheus.HistogramVec
	searchIndexRefresh *prometheus.CounterVec
	droppedTasks       *prometheus.CounterVec
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		auditRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "audit_records_total",
				Help:      "The number of audit records written.",
			}, []string{"action"},
		),
		dispatchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "notification_dispatch_total",
				Help:      "The number of notification channel deliveries by outcome.",
			}, []string{"channel", "result"},
		),
		dispatchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "notification_dispatch_seconds",
				Help:      "The time taken by one channel delivery.",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 6, 10},
			}, []string{"channel"},
		),
		searchIndexRefresh: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "search_index_refresh_total",
				Help:      "The number of search-index refreshes by outcome.",
			}, []string{"result"},
		),
		droppedTasks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "worker_dropped_tasks_total",
				Help:      "The number of background tasks dropped because a queue was full or closed.",
			}, []string{"queue"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.auditRecords.Describe(ch)
	c.dispatchTotal.Describe(ch)
	c.dispatchDuration.Describe(ch)
	c.searchIndexRefresh.Describe(ch)
	c.droppedTasks.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.auditRecords.Collect(ch)
	c.dispatchTotal.Collect(ch)
	c.dispatchDuration.Collect(ch)
	c.searchIndexRefresh.Collect(ch)
	c.droppedTasks.Collect(ch)
}

// AuditWritten counts one audit record.
func (c *Collector) AuditWritten(action string) {
	if c == nil {
		return
	}
	c.auditRecords.WithLabelValues(action).Inc()
}

// Delivery counts one channel delivery and observes its duration.
// channel is the channel family ("email", "webhook"), not the user-chosen name.
func (c *Collector) Delivery(channel, result string, took time.Duration) {
	if c == nil {
		return
	}
	c.dispatchTotal.WithLabelValues(channel, result).Inc()
	if result != ResultSkipped {
		c.dispatchDuration.WithLabelValues(channel).Observe(took.Seconds())
	}
}

// SearchRefresh counts one search-index refresh.
func (c *Collector) SearchRefresh(result string) {
	if c == nil {
		return
	}
	c.searchIndexRefresh.WithLabelValues(result).Inc()
}

// TaskDropped counts one task dropped by queue.
func (c *Collector) TaskDropped(queue string) {
	if c == nil {
		return
	}
	c.droppedTasks.WithLabelValues(queue).Inc()
}
