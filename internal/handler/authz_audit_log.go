// internal/handler/authz_audit_log.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/middleware"
	"github.com/hireloop/hireloop/internal/repository"
	"github.com/hireloop/hireloop/internal/service"
)

// AuthzAuditLogHandler handles API requests related to authorization audit logs
type AuthzAuditLogHandler struct {
	auditLogService *service.AuthzAuditLogService
}

// NewAuthzAuditLogHandler creates a new audit log handler
func NewAuthzAuditLogHandler(auditLogService *service.AuthzAuditLogService) *AuthzAuditLogHandler {
	return &AuthzAuditLogHandler{auditLogService: auditLogService}
}

// GetAuditLogs retrieves the company's authorization audit trail with
// filtering.
func (h *AuthzAuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	params := repository.AuditQueryParams{CompanyID: companyID}

	if subjectID := r.URL.Query().Get("user_id"); subjectID != "" {
		if id, err := uuid.Parse(subjectID); err == nil {
			params.UserID = id
		}
	}

	if permission := r.URL.Query().Get("permission"); permission != "" {
		params.Permission = permission
	}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			params.From = from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			params.To = to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.auditLogService.Query(r.Context(), userID, params)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"logs":  logs,
		"total": total,
	})
}
