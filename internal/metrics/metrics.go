package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransactionsSubmitted counts writes broadcast to the chain by contract and action
	TransactionsSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_transactions_submitted_total",
			Help: "Total number of transactions submitted",
		},
		[]string{"contract", "action"},
	)

	// TransactionsFinished counts tracked transactions reaching a terminal status
	TransactionsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_transactions_finished_total",
			Help: "Total number of tracked transactions by terminal status",
		},
		[]string{"action", "status"},
	)

	// ReceiptWaitDuration tracks time from submission to an observed receipt
	ReceiptWaitDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dapp_receipt_wait_seconds",
			Help:    "Time between submission and receipt in seconds",
			Buckets: []float64{1, 2, 5, 10, 15, 30, 60, 120, 300, 600},
		},
		[]string{"action"},
	)

	// PendingTransactions tracks transactions currently being observed
	PendingTransactions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dapp_pending_transactions",
			Help: "Number of transactions awaiting a receipt",
		},
	)

	// GasUsed tracks gas used by confirmed transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dapp_gas_used",
			Help:    "Gas used by mined transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000},
		},
		[]string{"action"},
	)

	// ChainReadDuration tracks contract read latency
	ChainReadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dapp_chain_read_duration_seconds",
			Help:    "Contract read duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"contract", "method"},
	)

	// CacheRefreshes counts cache refreshes by key kind and result
	CacheRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_cache_refreshes_total",
			Help: "Total number of cache entry refreshes",
		},
		[]string{"kind", "result"},
	)

	// CacheEntries tracks registered cache entries
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dapp_cache_entries",
			Help: "Number of registered cache entries",
		},
	)

	// WalletRejections counts signatures declined by the wallet
	WalletRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dapp_wallet_rejections_total",
			Help: "Total number of transactions declined by the wallet",
		},
	)

	// ErrorsTotal counts failed interactions by action and category
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dapp_errors_total",
			Help: "Total number of errors",
		},
		[]string{"action", "category"},
	)
)
