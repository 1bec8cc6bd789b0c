package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Entity labels
const (
	EntityCompany = "company"
	EntityRisk    = "risk"
	EntityControl = "control"
)

// Operation labels
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpAssign = "assign"
)

// Metrics owns a dedicated Prometheus registry and the collectors of the
// application. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	records   *prometheus.GaugeVec
	requests  *prometheus.HistogramVec
}

// New creates the collectors and registers them together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "riskmatrix",
			Name:      "records_mutations_total",
			Help:      "Number of record mutations by entity and operation.",
		}, []string{"entity", "op"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "riskmatrix",
			Name:      "records",
			Help:      "Number of records currently held by entity.",
		}, []string{"entity"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "riskmatrix",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}

	m.registry.MustRegister(
		m.mutations,
		m.records,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Mutation counts one record mutation
func (m *Metrics) Mutation(entity, op string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.mutations.WithLabelValues(entity, op).Add(float64(n))
}

// Records sets the current record counts
func (m *Metrics) Records(companies, risks, controls int) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(EntityCompany).Set(float64(companies))
	m.records.WithLabelValues(EntityRisk).Set(float64(risks))
	m.records.WithLabelValues(EntityControl).Set(float64(controls))
}

// ObserveRequest records the latency of one HTTP request
func (m *Metrics) ObserveRequest(method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, strconv.Itoa(status)).Observe(d.Seconds())
}

// Registry returns the registry holding every collector
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
