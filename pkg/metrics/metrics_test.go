package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/wb_tariffs/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	t.Helper()
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestSyncCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeSuccess := testutil.ToFloat64(metrics.SyncRuns.WithLabelValues("success"))
	beforeError := testutil.ToFloat64(metrics.SyncRuns.WithLabelValues("error"))
	beforeRows := testutil.ToFloat64(metrics.TariffRowsWritten)
	beforeFailures := testutil.ToFloat64(metrics.WarehouseFailures)

	metrics.SyncRuns.WithLabelValues("success").Inc()
	metrics.TariffRowsWritten.Add(37)
	metrics.WarehouseFailures.Inc()

	if got := testutil.ToFloat64(metrics.SyncRuns.WithLabelValues("success")); got != beforeSuccess+1 {
		t.Fatalf("SyncRuns(success): got=%v want=%v", got, beforeSuccess+1)
	}
	if got := testutil.ToFloat64(metrics.SyncRuns.WithLabelValues("error")); got != beforeError {
		t.Fatalf("SyncRuns(error): got=%v want=%v", got, beforeError)
	}
	if got := testutil.ToFloat64(metrics.TariffRowsWritten); got != beforeRows+37 {
		t.Fatalf("TariffRowsWritten: got=%v want=%v", got, beforeRows+37)
	}
	if got := testutil.ToFloat64(metrics.WarehouseFailures); got != beforeFailures+1 {
		t.Fatalf("WarehouseFailures: got=%v want=%v", got, beforeFailures+1)
	}
}

func TestSheetCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	beforeRenders := testutil.ToFloat64(metrics.SheetRenders.WithLabelValues("success"))
	beforeRows := testutil.ToFloat64(metrics.SheetRowsWritten)
	beforeEvents := testutil.ToFloat64(metrics.OutcomeEvents.WithLabelValues("ok"))

	metrics.SheetRenders.WithLabelValues("success").Inc()
	metrics.SheetRowsWritten.Add(11)
	metrics.OutcomeEvents.WithLabelValues("ok").Inc()

	if got := testutil.ToFloat64(metrics.SheetRenders.WithLabelValues("success")); got != beforeRenders+1 {
		t.Fatalf("SheetRenders(success): got=%v want=%v", got, beforeRenders+1)
	}
	if got := testutil.ToFloat64(metrics.SheetRowsWritten); got != beforeRows+11 {
		t.Fatalf("SheetRowsWritten: got=%v want=%v", got, beforeRows+11)
	}
	if got := testutil.ToFloat64(metrics.OutcomeEvents.WithLabelValues("ok")); got != beforeEvents+1 {
		t.Fatalf("OutcomeEvents(ok): got=%v want=%v", got, beforeEvents+1)
	}
}
