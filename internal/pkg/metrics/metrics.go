// Package metrics declares the Prometheus collectors of the ledger service.
// They register with the default registry on import and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maskledger"

// Purchase outcomes used as the result label of PurchasesTotal.
const (
	ResultSuccess           = "success"
	ResultInvalidRequest    = "invalid_request"
	ResultNotFound          = "not_found"
	ResultInsufficientFunds = "insufficient_funds"
	ResultConflict          = "conflict"
	ResultError             = "error"
)

// PurchasesTotal counts purchase attempts.
// Label:
//   - result: one of the Result* constants
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of purchase attempts, by outcome.",
	},
	[]string{"result"},
)

// PurchaseAmountTotal sums the total cost of committed purchases.
var PurchaseAmountTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchase_amount_total",
		Help:      "Sum of the total cost of committed purchases.",
	},
)

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: HTTP method
//   - route: matched gin route template (e.g. "/pharmacies/:id/masks/")
//   - status: response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// ImportedRowsTotal counts rows written by the seed importer.
// Label:
//   - entity: "pharmacy", "mask", "opening_hour", "user" or "transaction"
var ImportedRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imported_rows_total",
		Help:      "Total number of rows inserted by the seed importer, by entity.",
	},
	[]string{"entity"},
)
