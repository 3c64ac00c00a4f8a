// Package metrics wraps the Prometheus collectors shared by the batch
// loader and the query API. The loader pushes its registry to a
// Pushgateway at the end of a run (batch jobs have nothing to scrape);
// the API exposes the same registry on a /metrics endpoint.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Recorder owns a private registry so tests and multiple instances never
// collide on the global default registry.
type Recorder struct {
	reg *prometheus.Registry

	rowsTotal     *prometheus.CounterVec
	invalidTotal  *prometheus.CounterVec
	bulkCalls     *prometheus.CounterVec
	queriesTotal  *prometheus.CounterVec
	requestsTotal *prometheus.CounterVec
}

// New constructs a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		rowsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_rows_total",
			Help: "Rows assembled per output table.",
		}, []string{"table"}),
		invalidTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_invalid_values_total",
			Help: "Field values replaced with a missing marker, per table and field.",
		}, []string{"table", "field"}),
		bulkCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_bulk_calls_total",
			Help: "Bulk write calls per index and outcome.",
		}, []string{"index", "status"}),
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_sql_queries_total",
			Help: "SQL queries issued to the store, per outcome.",
		}, []string{"status"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "API requests per route and status code.",
		}, []string{"route", "code"}),
	}
	r.reg.MustRegister(r.rowsTotal, r.invalidTotal, r.bulkCalls, r.queriesTotal, r.requestsTotal)
	return r
}

// Rows adds n to the assembled-row counter for table.
func (r *Recorder) Rows(table string, n int) {
	r.rowsTotal.WithLabelValues(table).Add(float64(n))
}

// Invalid counts one replaced value. Together with a skiplog.Log it forms
// the pipeline's audit trail; the uniqID and raw value only go to the
// skip log.
func (r *Recorder) Invalid(table, field, uniqID, raw string) {
	r.invalidTotal.WithLabelValues(table, field).Inc()
}

// BulkCall counts one bulk write call and its outcome.
func (r *Recorder) BulkCall(index string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.bulkCalls.WithLabelValues(index, status).Inc()
}

// Query counts one SQL query and its outcome.
func (r *Recorder) Query(err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	r.queriesTotal.WithLabelValues(status).Inc()
}

// Request counts one handled API request.
func (r *Recorder) Request(route string, code int) {
	r.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Handler returns the scrape endpoint for the Recorder's registry.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Push sends the registry to a Prometheus Pushgateway under the given job
// name. Meant to be called once, at the end of a batch run.
func (r *Recorder) Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(r.reg).Push()
}
