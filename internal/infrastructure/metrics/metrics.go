package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Ledger metrics
	MovementsCreated  *prometheus.CounterVec
	MovementsDeleted  prometheus.Counter
	TransfersCreated  prometheus.Counter
	PeriodLockDenials prometheus.Counter

	// Balance metrics
	BalanceReplays    prometheus.Counter
	BalanceCacheHits  prometheus.Counter
	BalanceCacheMiss  prometheus.Counter
	BalanceReplayTime prometheus.Histogram

	// Reconciliation metrics
	ReconciliationsRecorded *prometheus.CounterVec

	// Database metrics
	DBErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		MovementsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixaflow_movements_created_total",
				Help: "Total number of ledger movements created by kind",
			},
			[]string{"kind"},
		),
		MovementsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixaflow_movements_deleted_total",
			Help: "Total number of ledger movements deleted",
		}),
		TransfersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixaflow_transfers_created_total",
			Help: "Total number of transfer pairs created",
		}),
		PeriodLockDenials: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixaflow_period_lock_denials_total",
			Help: "Total number of writes rejected by the closing watermark",
		}),

		BalanceReplays: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixaflow_balance_replays_total",
			Help: "Total number of balance computations by replay",
		}),
		BalanceCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixaflow_balance_cache_hits_total",
			Help: "Total number of memoized balance hits",
		}),
		BalanceCacheMiss: promauto.NewCounter(prometheus.CounterOpts{
			Name: "caixaflow_balance_cache_misses_total",
			Help: "Total number of memoized balance misses",
		}),
		BalanceReplayTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "caixaflow_balance_replay_duration_seconds",
			Help:    "Duration of balance replays",
			Buckets: prometheus.DefBuckets,
		}),

		ReconciliationsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixaflow_reconciliations_recorded_total",
				Help: "Total number of reconciliation records by status",
			},
			[]string{"status"},
		),

		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "caixaflow_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),
	}
}
