package service

import (
	"context"
	"log/slog"

	"dealgate/internal/investor/models"
	"dealgate/pkg/platform/audit"
	"dealgate/pkg/requestcontext"
)

// auditEmitter wraps the publisher so call sites stay one-liners and a
// missing publisher (tests, dev mode) is a no-op. Emit failures are logged
// but never fail the business operation; the store write is the source of
// truth.
type auditEmitter struct {
	logger    *slog.Logger
	publisher audit.Publisher
}

func newAuditEmitter(logger *slog.Logger, publisher audit.Publisher) *auditEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &auditEmitter{logger: logger, publisher: publisher}
}

func (e *auditEmitter) emit(ctx context.Context, action audit.AuditEvent, investorID models.InvestorID, actorID, reason string, detail map[string]string) {
	if e.publisher == nil {
		return
	}
	event := audit.Event{
		Timestamp:  requestcontext.Now(ctx),
		InvestorID: investorID.String(),
		Action:     string(action),
		ActorID:    actorID,
		Reason:     reason,
		RequestID:  requestcontext.RequestID(ctx),
		Detail:     detail,
	}
	if err := e.publisher.Emit(ctx, event); err != nil {
		e.logger.ErrorContext(ctx, "audit emit failed",
			"action", string(action),
			"investor_id", event.InvestorID,
			"error", err,
		)
	}
}
