package ports

import (
	"context"

	"orderflow/internal/core/domain/model/audit"
)

// AuditSink is the append-only destination for audit trail entries.
//
// Append fails only on sink unavailability and is never retried here;
// retry or backoff, if any, is the sink's own concern. Callers treat the
// write as best-effort: a failed append must never fail the transition
// that triggered it.
type AuditSink interface {
	Append(ctx context.Context, entry audit.Entry) error
}
