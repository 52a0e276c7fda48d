package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the movement engine.
type Metrics struct {
	// Movement metrics
	MovementsRegistered *prometheus.CounterVec
	MovementsDeleted    prometheus.Counter
	MovementDuration    prometheus.Histogram
	MovementAmount      prometheus.Histogram
	MovementErrors      *prometheus.CounterVec

	// Account metrics
	AccountsCreated     prometheus.Counter
	AccountsDeactivated prometheus.Counter

	// Ledger metrics
	LedgerEntriesWritten prometheus.Counter
	ChainVerifications   *prometheus.CounterVec

	// Statement metrics
	StatementsBuilt   prometheus.Counter
	StatementDuration prometheus.Histogram

	// Customer service metrics
	CustomerLookups *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		MovementsRegistered: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_movements_registered_total",
				Help: "Total number of movements registered",
			},
			[]string{"direction"},
		),
		MovementsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accounts_movements_deleted_total",
			Help: "Total number of movements deleted",
		}),
		MovementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "accounts_movement_duration_seconds",
			Help:    "Duration of movement registration",
			Buckets: prometheus.DefBuckets,
		}),
		MovementAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "accounts_movement_amount",
			Help:    "Absolute movement amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		MovementErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_movement_errors_total",
				Help: "Total number of movement errors by code",
			},
			[]string{"code"},
		),

		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accounts_created_total",
			Help: "Total number of accounts opened",
		}),
		AccountsDeactivated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accounts_deactivated_total",
			Help: "Total number of accounts deactivated",
		}),

		LedgerEntriesWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accounts_ledger_entries_written_total",
			Help: "Total number of ledger entries appended",
		}),
		ChainVerifications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_ledger_chain_verifications_total",
				Help: "Ledger chain verification outcomes",
			},
			[]string{"result"},
		),

		StatementsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "accounts_statements_built_total",
			Help: "Total number of statement reports built",
		}),
		StatementDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "accounts_statement_duration_seconds",
			Help:    "Duration of statement construction",
			Buckets: prometheus.DefBuckets,
		}),

		CustomerLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accounts_customer_lookups_total",
				Help: "Customer service lookups by outcome",
			},
			[]string{"outcome"},
		),
	}
}
