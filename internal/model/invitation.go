// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
	// InvitationPreAccepted marks an invitation accepted by an email address
	// with no account yet; membership creation completes at first login.
	InvitationPreAccepted InvitationStatus = "pre_accepted"
)

// InvitationTTL is how long an invitation stays acceptable. Expiry is
// evaluated lazily at read and accept time; expired rows are not swept.
const InvitationTTL = 7 * 24 * time.Hour

type Invitation struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"company_id"`
	RoleID      uuid.UUID        `gorm:"type:uuid;not null" json:"role_id"`
	InviterID   uuid.UUID        `gorm:"type:uuid;not null" json:"inviter_id"`
	Email       string           `gorm:"type:citext;not null;index" json:"email"`
	Message     string           `gorm:"type:text" json:"message,omitempty"`
	Status      InvitationStatus `gorm:"type:invitation_status;not null;default:'pending'" json:"status"`
	ExpiresAt   time.Time        `gorm:"not null" json:"expires_at"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Role    Role    `gorm:"foreignKey:RoleID" json:"role"`
	Inviter User    `gorm:"foreignKey:InviterID" json:"-"`
}

// Expired reports whether the invitation is past its expiry at the given
// instant.
func (i *Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
