package engine

import (
	"strings"
	"testing"
)

func TestMetricsCounters(t *testing.T) {
	before := GetMetrics()

	CountAudit()
	CountHiring()
	CountTransform()
	CountImport(9, 1)
	CountExport()
	CountHistoryWrite()

	after := GetMetrics()
	checks := map[string]int64{
		"audit_requests":     1,
		"hiring_requests":    1,
		"transform_requests": 1,
		"import_runs":        1,
		"records_injected":   9,
		"inject_errors":      1,
		"export_requests":    1,
		"history_writes":     1,
	}
	for key, delta := range checks {
		if got := after[key] - before[key]; got != delta {
			t.Errorf("%s delta = %d, want %d", key, got, delta)
		}
	}
}

func TestFormatMetrics(t *testing.T) {
	out := FormatMetrics()
	for _, key := range []string{
		"audit_requests", "import_runs", "records_injected",
		"export_requests", "cache_hits", "cache_misses",
	} {
		if !strings.Contains(out, key+" ") {
			t.Errorf("FormatMetrics missing %q:\n%s", key, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("FormatMetrics should end with a newline")
	}
}
