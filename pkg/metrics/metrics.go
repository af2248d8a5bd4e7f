package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tariff_sync_runs_total",
			Help: "Number of tariff sync attempts by status",
		},
		[]string{"status"}, // success|error
	)
	TariffRowsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tariff_rows_written_total",
			Help: "Number of tariff rows upserted into the store",
		},
	)
	WarehouseFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tariff_warehouse_failures_total",
			Help: "Number of warehouses skipped due to per-item failures",
		},
	)
)

var (
	SheetRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sheet_renders_total",
			Help: "Number of sheet render attempts by status",
		},
		[]string{"status"}, // success|error
	)
	SheetRowsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sheet_rows_written_total",
			Help: "Number of tariff rows written to sheets",
		},
	)
)

var OutcomeEvents = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "outcome_events_published_total",
		Help: "Number of outcome events published to the broker",
	},
	[]string{"status"}, // ok|failed
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			SyncRuns, TariffRowsWritten, WarehouseFailures,
			SheetRenders, SheetRowsWritten, OutcomeEvents,
		)
	})
}
