// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Handle      string    `gorm:"type:citext;uniqueIndex;not null" json:"handle"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Website     string    `gorm:"type:text" json:"website,omitempty"`
	LogoURL     string    `gorm:"type:text" json:"logo_url,omitempty"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CreatedBy User            `gorm:"foreignKey:CreatedByID" json:"-"`
	Members   []CompanyMember `gorm:"foreignKey:CompanyID" json:"-"`
	Roles     []Role          `gorm:"foreignKey:CompanyID" json:"-"`
}

// CompanyMember links a user to a company with exactly one role.
// A user has at most one membership per company.
type CompanyMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_user" json:"company_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_user" json:"user_id"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null" json:"role_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Role    Role    `gorm:"foreignKey:RoleID" json:"role"`
}
