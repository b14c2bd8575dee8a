// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type AccountType string

const (
	AccountPersonal AccountType = "personal"
	AccountCompany  AccountType = "company"
)

type UserStatus string

const (
	StatusPending UserStatus = "pending"
	StatusActive  UserStatus = "active"
	StatusLocked  UserStatus = "locked"
)

type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string      `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName    string      `gorm:"type:text;not null" json:"first_name"`
	LastName     string      `gorm:"type:text" json:"last_name"`
	PasswordHash string      `gorm:"type:text;not null" json:"-"`
	AccountType  AccountType `gorm:"type:account_type;not null;default:'personal'" json:"account_type"`
	Status       UserStatus  `gorm:"type:user_status;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// FullName joins first and last name for email salutations.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
