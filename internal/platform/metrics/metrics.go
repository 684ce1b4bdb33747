package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Valores del label "outcome".
const (
	Fail = "fail"
	Ok   = "ok"
)

// Collectors del servicio. Se registran una sola vez en el registry default.
var (
	StoreOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pet_records_store_ops_total",
		Help: "Cumulative number of document store operations.",
	}, []string{"collection", "op", "outcome"})

	StoreOpSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pet_records_store_op_seconds",
		Help:    "Latency of document store operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"collection", "op"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pet_records_http_requests_total",
		Help: "Cumulative number of HTTP requests served.",
	}, []string{"method", "route", "status"})

	HTTPRequestSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pet_records_http_request_seconds",
		Help:    "Latency of HTTP requests.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Outcome traduce un error al label "outcome".
func Outcome(err error) string {
	if err != nil {
		return Fail
	}
	return Ok
}
