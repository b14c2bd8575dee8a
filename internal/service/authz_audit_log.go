// internal/service/authz_audit_log.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/authz"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// AuthzAuditLogService exposes the authorization audit trail to company
// administrators.
type AuthzAuditLogService struct {
	repo    *repository.AuthzAuditLogRepository
	checker authz.PermissionSource
}

// NewAuthzAuditLogService creates a new AuthzAuditLogService
func NewAuthzAuditLogService(repo *repository.AuthzAuditLogRepository, checker authz.PermissionSource) *AuthzAuditLogService {
	return &AuthzAuditLogService{
		repo:    repo,
		checker: checker,
	}
}

// Query returns the company's audit entries for callers holding
// manage_roles.
func (s *AuthzAuditLogService) Query(ctx context.Context, actingUserID uuid.UUID, params repository.AuditQueryParams) ([]*model.AuthzAuditLog, int64, error) {
	if params.CompanyID == uuid.Nil {
		return nil, 0, fmt.Errorf("%w: company id is required", domain.ErrInvalidInput)
	}

	allowed, err := s.checker.Check(ctx, actingUserID, params.CompanyID, model.PermManageRoles)
	if err != nil {
		return nil, 0, fmt.Errorf("checking %s: %w", model.PermManageRoles, err)
	}
	if !allowed {
		return nil, 0, domain.ErrForbidden
	}

	return s.repo.Query(ctx, params)
}
