package commands

import (
	"context"
	"log/slog"

	"orderflow/internal/core/domain/model/audit"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/ports"
)

// auditAppender performs the best-effort audit write shared by all command
// handlers. It runs strictly after the primary transaction has committed:
// the order's new state is the source of truth and an audit failure is
// reported as a warning only, never as the command's result.
type auditAppender struct {
	sink   ports.AuditSink
	logger *slog.Logger
}

func newAuditAppender(sink ports.AuditSink, logger *slog.Logger) auditAppender {
	return auditAppender{
		sink:   sink,
		logger: logger.With("component", "audit_appender"),
	}
}

// append records one transition. Failures are swallowed after logging.
func (a auditAppender) append(
	ctx context.Context,
	orderID kernel.UUID,
	action, actorID string,
	payload map[string]string,
) {
	entry, err := audit.NewEntry(orderID, action, actorID, payload)
	if err != nil {
		a.logger.WarnContext(ctx, "audit entry rejected",
			"order_id", orderID.String(), "action", action, "error", err)
		return
	}

	if err := a.sink.Append(ctx, entry); err != nil {
		a.logger.WarnContext(ctx, "audit append failed",
			"order_id", orderID.String(), "action", action, "error", err)
	}
}
