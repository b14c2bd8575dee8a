// internal/authz/authority.go

// Package authz owns the company role model: role ranking, per-role
// permission grants, and the decision procedure "can user U perform action A
// in company C". Every mutating company operation calls into it before
// touching storage.
package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/audit"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// PermissionSource answers a single question: does the user hold the named
// permission in the company. The gorm-backed Authority is the primary
// implementation; PermifySource delegates to an external authorization
// service. Implementations fail closed.
type PermissionSource interface {
	Check(ctx context.Context, userID, companyID uuid.UUID, permission string) (bool, error)
}

// RelationshipSyncer mirrors membership rows into an external authorization
// backend as relationship tuples. The gorm-backed Authority reads the rows
// directly and needs no mirroring; PermifySource answers from tuples and
// does.
type RelationshipSyncer interface {
	WriteMembership(ctx context.Context, companyID, userID uuid.UUID, relation string) error
	DeleteMembership(ctx context.Context, companyID, userID uuid.UUID, relation string) error
}

// Authority decides permissions from membership and grant rows. Missing
// membership and missing grant rows both mean denied.
type Authority struct {
	members  repository.MemberRepositoryIface
	roles    repository.RoleRepositoryIface
	recorder audit.Recorder
}

func NewAuthority(members repository.MemberRepositoryIface, roles repository.RoleRepositoryIface, recorder audit.Recorder) *Authority {
	if recorder == nil {
		recorder = audit.NoOpRecorder{}
	}
	return &Authority{members: members, roles: roles, recorder: recorder}
}

// Check implements PermissionSource.
func (a *Authority) Check(ctx context.Context, userID, companyID uuid.UUID, permission string) (bool, error) {
	return a.HasPermission(ctx, userID, companyID, permission)
}

// HasPermission looks up the caller's role in the company and checks whether
// that role has the named permission enabled. No membership means false, not
// an error.
func (a *Authority) HasPermission(ctx context.Context, userID, companyID uuid.UUID, permission string) (bool, error) {
	member, err := a.members.FindByCompanyAndUser(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			a.record(ctx, userID, companyID, permission, false)
			return false, nil
		}
		return false, fmt.Errorf("resolving membership: %w", err)
	}

	allowed, err := a.roles.HasGrant(ctx, member.RoleID, permission)
	if err != nil {
		return false, fmt.Errorf("checking grant: %w", err)
	}

	a.record(ctx, userID, companyID, permission, allowed)
	return allowed, nil
}

// CanAssignRole enforces the role hierarchy: a role may only assign roles
// strictly below its own rank. Equal rank is never assignable.
func (a *Authority) CanAssignRole(acting, target *model.Role) bool {
	return CanAssignRole(acting, target)
}

// CanAssignRole compares two roles by position. Exposed as a function so the
// services share a single ranking comparison.
func CanAssignRole(acting, target *model.Role) bool {
	if acting == nil || target == nil {
		return false
	}
	return acting.Outranks(target)
}

// IsProtectedRole reports whether the role is in the set a restricted
// role-changer may not touch (Owner, Admin).
func IsProtectedRole(role *model.Role) bool {
	if role == nil {
		return false
	}
	for _, name := range model.ProtectedRoleNames() {
		if role.IsDefault && role.Name == name {
			return true
		}
	}
	return false
}

func (a *Authority) record(ctx context.Context, userID, companyID uuid.UUID, permission string, allowed bool) {
	a.recorder.RecordDecision(ctx, &model.AuthzAuditLog{
		UserID:     userID,
		CompanyID:  companyID,
		Permission: permission,
		Allowed:    allowed,
	})
}
