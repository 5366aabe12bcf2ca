package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AuditRequests     atomic.Int64
	HiringRequests    atomic.Int64
	TransformRequests atomic.Int64
	ImportRuns        atomic.Int64
	RecordsInjected   atomic.Int64
	InjectErrors      atomic.Int64
	ExportRequests    atomic.Int64
	HistoryWrites     atomic.Int64
}

// CountAudit increments the audit request counter.
func CountAudit() { metrics.AuditRequests.Add(1) }

// CountHiring increments the hiring recommendation counter.
func CountHiring() { metrics.HiringRequests.Add(1) }

// CountTransform increments the transform preview counter.
func CountTransform() { metrics.TransformRequests.Add(1) }

// CountImport records one injection run and its per-record outcomes.
func CountImport(recordsInjected, errs int) {
	metrics.ImportRuns.Add(1)
	metrics.RecordsInjected.Add(int64(recordsInjected))
	metrics.InjectErrors.Add(int64(errs))
}

// CountExport increments the export request counter.
func CountExport() { metrics.ExportRequests.Add(1) }

// CountHistoryWrite increments the score-history write counter.
func CountHistoryWrite() { metrics.HistoryWrites.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"audit_requests":     metrics.AuditRequests.Load(),
		"hiring_requests":    metrics.HiringRequests.Load(),
		"transform_requests": metrics.TransformRequests.Load(),
		"import_runs":        metrics.ImportRuns.Load(),
		"records_injected":   metrics.RecordsInjected.Load(),
		"inject_errors":      metrics.InjectErrors.Load(),
		"export_requests":    metrics.ExportRequests.Load(),
		"history_writes":     metrics.HistoryWrites.Load(),
		"cache_hits":         hits,
		"cache_misses":       misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	keys := []string{
		"audit_requests", "hiring_requests", "transform_requests",
		"import_runs", "records_injected", "inject_errors",
		"export_requests", "history_writes",
		"cache_hits", "cache_misses",
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
