// internal/audit/recorder.go
package audit

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// Recorder receives authorization decisions for the audit trail. Recording is
// best-effort: implementations log failures themselves and the decision path
// never depends on the outcome.
type Recorder interface {
	RecordDecision(ctx context.Context, entry *model.AuthzAuditLog)
}

// NoOpRecorder discards all decisions.
type NoOpRecorder struct{}

func (NoOpRecorder) RecordDecision(ctx context.Context, entry *model.AuthzAuditLog) {}

// DBRecorder persists decisions through the audit log repository.
type DBRecorder struct {
	repo   *repository.AuthzAuditLogRepository
	logger *slog.Logger
}

func NewDBRecorder(repo *repository.AuthzAuditLogRepository, logger *slog.Logger) *DBRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &DBRecorder{repo: repo, logger: logger}
}

func (r *DBRecorder) RecordDecision(ctx context.Context, entry *model.AuthzAuditLog) {
	entry.RequestID = chimw.GetReqID(ctx)
	entry.ClientIP = clientIPFromContext(ctx)

	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.WarnContext(ctx, "failed to record authorization decision",
			"error", err,
			"user_id", entry.UserID,
			"company_id", entry.CompanyID,
			"permission", entry.Permission,
		)
	}
}

type contextKey string

const clientIPKey = contextKey("audit_client_ip")

// RequestContext captures per-request metadata for audit entries. Mount it
// after chi's RealIP middleware.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := r.RemoteAddr
		if host, _, err := net.SplitHostPort(ip); err == nil {
			ip = host
		}
		ctx := context.WithValue(r.Context(), clientIPKey, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}
