// internal/repository/authz_audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/model"
	"gorm.io/gorm"
)

// AuthzAuditLogRepository handles database operations for authorization audit logs
type AuthzAuditLogRepository struct {
	db *gorm.DB
}

// NewAuthzAuditLogRepository creates a new AuthzAuditLogRepository
func NewAuthzAuditLogRepository(db *gorm.DB) *AuthzAuditLogRepository {
	return &AuthzAuditLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *AuthzAuditLogRepository) Create(ctx context.Context, log *model.AuthzAuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create authorization audit log: %w", result.Error)
	}

	return nil
}

// AuditQueryParams holds parameters for querying audit logs
type AuditQueryParams struct {
	CompanyID  uuid.UUID
	UserID     uuid.UUID
	Permission string
	From       time.Time
	To         time.Time
	Offset     int
	Limit      int
}

// Query returns audit log entries matching the given parameters, newest first.
func (r *AuthzAuditLogRepository) Query(ctx context.Context, params AuditQueryParams) ([]*model.AuthzAuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.AuthzAuditLog{})

	if params.CompanyID != uuid.Nil {
		query = query.Where("company_id = ?", params.CompanyID)
	}
	if params.UserID != uuid.Nil {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Permission != "" {
		query = query.Where("permission = ?", params.Permission)
	}
	if !params.From.IsZero() {
		query = query.Where("timestamp >= ?", params.From)
	}
	if !params.To.IsZero() {
		query = query.Where("timestamp <= ?", params.To)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	limit := params.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	var logs []*model.AuthzAuditLog
	if err := query.Order("timestamp DESC").Offset(params.Offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query audit logs: %w", err)
	}

	return logs, count, nil
}
