package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records business metrics through promauto collectors
type PrometheusMetrics struct {
	transfersTotal      *prometheus.CounterVec
	transferDuration    prometheus.Histogram
	transferAmount      prometheus.Histogram
	balanceAdjustments  *prometheus.CounterVec
	exchangesTotal      *prometheus.CounterVec
	reserveReplaysTotal *prometheus.CounterVec
	reserveReplaySize   prometheus.Histogram
	loginsTotal         *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors with the default registry
func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfers processed",
			},
			[]string{"status"},
		),
		transferDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount_bdt",
				Help:    "Transfer amount in BDT",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
		),
		balanceAdjustments: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balance_adjustments_total",
				Help: "Total number of manual balance adjustments",
			},
			[]string{"type"},
		),
		exchangesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchanges_total",
				Help: "Total number of currency exchanges recorded",
			},
			[]string{"type", "currency"},
		),
		reserveReplaysTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reserve_replays_total",
				Help: "Total number of reserve projection replays",
			},
			[]string{"currency"},
		),
		reserveReplaySize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reserve_replay_exchanges",
				Help:    "Number of exchanges folded per reserve replay",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		loginsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logins_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) RecordTransfer(status string, amount float64, duration time.Duration) {
	m.transfersTotal.WithLabelValues(status).Inc()
	m.transferDuration.Observe(float64(duration.Milliseconds()))
	m.transferAmount.Observe(amount)
}

func (m *PrometheusMetrics) RecordBalanceAdjustment(transactionType string) {
	m.balanceAdjustments.WithLabelValues(transactionType).Inc()
}

func (m *PrometheusMetrics) RecordExchange(exchangeType, currencyCode string) {
	m.exchangesTotal.WithLabelValues(exchangeType, currencyCode).Inc()
}

func (m *PrometheusMetrics) RecordReserveReplay(currencyCode string, exchangeCount int) {
	m.reserveReplaysTotal.WithLabelValues(currencyCode).Inc()
	m.reserveReplaySize.Observe(float64(exchangeCount))
}

func (m *PrometheusMetrics) RecordLogin(status string) {
	m.loginsTotal.WithLabelValues(status).Inc()
}

// NoopMetrics discards all metrics. Tests use it to avoid duplicate registry
// registration across suites.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (NoopMetrics) RecordTransfer(string, float64, time.Duration) {}
func (NoopMetrics) RecordBalanceAdjustment(string)                {}
func (NoopMetrics) RecordExchange(string, string)                 {}
func (NoopMetrics) RecordReserveReplay(string, int)               {}
func (NoopMetrics) RecordLogin(string)                            {}
