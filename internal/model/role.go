// internal/model/role.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role is a named rank within a company. Higher Position means more senior.
// Default roles are seeded at company creation and cannot be renamed or
// deleted; the Owner role is always the highest-ranked.
type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_company_role_name" json:"company_id"`
	Name      string    `gorm:"type:text;not null;uniqueIndex:idx_company_role_name" json:"name"`
	Color     string    `gorm:"type:text" json:"color,omitempty"`
	Position  int       `gorm:"not null" json:"position"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Permissions []RolePermission `gorm:"foreignKey:RoleID" json:"permissions,omitempty"`
}

// Outranks reports whether r is strictly more senior than other. A role never
// outranks itself, so a member holding r can only assign roles below r.
func (r *Role) Outranks(other *Role) bool {
	return r.Position > other.Position
}

// Permission is a named capability. Category is display-only grouping and has
// no effect on authorization.
type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Category    string    `gorm:"type:text;not null" json:"category"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RolePermission grants one permission to one role. Absence of a row, or
// Enabled=false, means denied.
type RolePermission struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoleID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_permission" json:"role_id"`
	Permission string    `gorm:"type:text;not null;uniqueIndex:idx_role_permission" json:"permission"`
	Enabled    bool      `gorm:"not null;default:true" json:"enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// Permission names used by the membership, role, invitation and job post
// services. The catalog is open-ended; these are the seeded ones.
const (
	PermInviteUsers            = "invite_users"
	PermViewMembers            = "view_members"
	PermManageRoles            = "manage_roles"
	PermRemoveMembers          = "remove_members"
	PermManageCompany          = "manage_company"
	PermCreateJobPost          = "create_job_post"
	PermManageOwnJobPosts      = "manage_own_job_posts"
	PermManageAllJobPosts      = "manage_all_job_posts"
	PermChangeUserRoles        = "change_user_roles"
	PermChangeRegularUserRoles = "change_regular_user_roles"
	PermManageAllUsers         = "manage_all_users"
)

// Seeded default role names.
const (
	RoleOwner  = "Owner"
	RoleAdmin  = "Admin"
	RoleHR     = "HR"
	RoleSocial = "Social"
	RoleMember = "Member"
)

// DefaultRole describes one seeded role and its grants.
type DefaultRole struct {
	Name        string
	Color       string
	Position    int
	Permissions []string
}

// DefaultRoles is the seed set created for every company. Positions replace
// the legacy fixed owner>admin>hr>social>member enum with a single numeric
// ranking; Owner and Admin are the protected roles for restricted role
// changes.
func DefaultRoles() []DefaultRole {
	return []DefaultRole{
		{
			Name:     RoleOwner,
			Color:    "#b45309",
			Position: 50,
			Permissions: []string{
				PermInviteUsers, PermViewMembers, PermManageRoles,
				PermRemoveMembers, PermManageCompany, PermCreateJobPost,
				PermManageOwnJobPosts, PermManageAllJobPosts,
				PermChangeUserRoles, PermChangeRegularUserRoles,
				PermManageAllUsers,
			},
		},
		{
			Name:     RoleAdmin,
			Color:    "#7c3aed",
			Position: 40,
			Permissions: []string{
				PermInviteUsers, PermViewMembers, PermManageRoles,
				PermRemoveMembers, PermCreateJobPost, PermManageOwnJobPosts,
				PermManageAllJobPosts, PermChangeUserRoles,
				PermChangeRegularUserRoles,
			},
		},
		{
			Name:     RoleHR,
			Color:    "#0f766e",
			Position: 30,
			Permissions: []string{
				PermInviteUsers, PermViewMembers, PermCreateJobPost,
				PermManageOwnJobPosts, PermChangeRegularUserRoles,
			},
		},
		{
			Name:     RoleSocial,
			Color:    "#be185d",
			Position: 20,
			Permissions: []string{
				PermViewMembers, PermCreateJobPost, PermManageOwnJobPosts,
			},
		},
		{
			Name:        RoleMember,
			Color:       "#475569",
			Position:    10,
			Permissions: []string{PermViewMembers},
		},
	}
}

// ProtectedRoleNames are the roles a holder of only
// change_regular_user_roles may not assign or take away.
func ProtectedRoleNames() []string {
	return []string{RoleOwner, RoleAdmin}
}

// PermissionCatalog is the seeded permission registry, grouped by category
// for display.
func PermissionCatalog() []Permission {
	return []Permission{
		{Name: PermInviteUsers, Category: "members", Description: "Invite new members to the company"},
		{Name: PermViewMembers, Category: "members", Description: "View the company member list"},
		{Name: PermRemoveMembers, Category: "members", Description: "Remove members from the company"},
		{Name: PermChangeUserRoles, Category: "members", Description: "Change any member's role"},
		{Name: PermChangeRegularUserRoles, Category: "members", Description: "Change roles of non-privileged members"},
		{Name: PermManageAllUsers, Category: "members", Description: "Full member administration, including self"},
		{Name: PermManageRoles, Category: "roles", Description: "Create, edit and delete company roles"},
		{Name: PermManageCompany, Category: "company", Description: "Edit company profile"},
		{Name: PermCreateJobPost, Category: "job_posts", Description: "Create job posts"},
		{Name: PermManageOwnJobPosts, Category: "job_posts", Description: "Edit and delete own job posts"},
		{Name: PermManageAllJobPosts, Category: "job_posts", Description: "Edit and delete any job post"},
	}
}
