package bootstrap

import (
	"context"
	"time"

	"go-benefits/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

// Log stamps the entry with whatever request identity the context carries.
// Both fields are empty for process-level events like shutdown.
func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", contextutil.GetUserID(ctx)),
		zap.Any("meta", entry.Meta),
	)
}
