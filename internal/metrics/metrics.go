// Package metrics exposes Prometheus collectors for RPC traffic and bill
// state.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jay4webdev/Bill-Tracker/internal/models"
	"github.com/jay4webdev/Bill-Tracker/internal/state"
)

const namespace = "billtracker"

// Metrics holds every collector on its own registry so tests can create as
// many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests   *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	billsByStatus *prometheus.GaugeVec
	billsImported prometheus.Counter
	users         prometheus.Gauge
}

// New creates and registers the collectors, plus the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		billsByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bills",
			Help:      "Bills currently held, by status.",
		}, []string{"status"}),
		billsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_imported_total",
			Help:      "Bills added through bulk import.",
		}),
		users: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "users",
			Help:      "Registered user accounts.",
		}),
	}

	m.registry.MustRegister(
		m.rpcRequests,
		m.rpcDuration,
		m.billsByStatus,
		m.billsImported,
		m.users,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// Observe is a state.Observer that keeps the state gauges current.
func (m *Metrics) Observe(ev state.Event) {
	if ev.Kind == state.EventBillsImported {
		m.billsImported.Add(float64(ev.Imported))
	}
	if ev.Snapshot == nil {
		return
	}

	counts := map[models.Status]int{
		models.StatusPending: 0,
		models.StatusPaid:    0,
		models.StatusOverdue: 0,
	}
	for _, b := range ev.Snapshot.Bills {
		counts[b.Status]++
	}
	for status, n := range counts {
		m.billsByStatus.WithLabelValues(string(status)).Set(float64(n))
	}
	m.users.Set(float64(len(ev.Snapshot.Users)))
}
