// internal/model/authz_audit_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuthzAuditLog records a single authorization decision made by the role
// authority. Recording is best-effort and never affects the decision itself.
type AuthzAuditLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp  time.Time `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CompanyID  uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	Permission string    `json:"permission" gorm:"type:text;not null"`
	Allowed    bool      `json:"allowed"`
	Context    JSONMap   `json:"context" gorm:"type:jsonb"`
	RequestID  string    `json:"request_id"`
	ClientIP   string    `json:"client_ip"`
	CreatedAt  time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AuthzAuditLog
func (AuthzAuditLog) TableName() string {
	return "authz_audit_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
