package bootstrap

import (
	"context"
	"time"

	"jobtrack/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the process-wide zap
// logger, so the trail ends up wherever application logs go.
type StdoutAuditLogger struct {
	logger *zap.Logger
}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{logger: zap.L().Named("jobtrack.audit")}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info(entry.Action,
		zap.Time("at", time.Now().UTC()),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
