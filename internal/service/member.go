// internal/service/member.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/authz"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// MemberService enforces the invariants of role assignment and removal for
// company memberships.
type MemberService struct {
	members repository.MemberRepositoryIface
	roles   repository.RoleRepositoryIface
	checker authz.PermissionSource
	syncer  authz.RelationshipSyncer
}

// SetRelationshipSyncer mirrors membership changes into an external
// authorization backend. Optional; local rows stay authoritative.
func (s *MemberService) SetRelationshipSyncer(syncer authz.RelationshipSyncer) {
	s.syncer = syncer
}

func NewMemberService(
	members repository.MemberRepositoryIface,
	roles repository.RoleRepositoryIface,
	checker authz.PermissionSource,
) *MemberService {
	return &MemberService{
		members: members,
		roles:   roles,
		checker: checker,
	}
}

// ChangeMemberRole reassigns the target member to the given role and returns
// the new role's display name.
//
// Checked in order: the role must belong to the company; the target must be a
// member; changing one's own role requires manage_all_users; otherwise the
// acting user needs change_user_roles or change_regular_user_roles; holders
// of only the restricted permission may not move anyone into or out of the
// Owner and Admin roles; the sole Owner can never be demoted.
func (s *MemberService) ChangeMemberRole(ctx context.Context, actingUserID, companyID, targetUserID, newRoleID uuid.UUID) (string, error) {
	newRole, err := s.roles.FindByID(ctx, newRoleID)
	if err != nil {
		return "", err
	}
	if newRole.CompanyID != companyID {
		return "", domain.ErrRoleNotFound
	}

	member, err := s.members.FindByCompanyAndUser(ctx, companyID, targetUserID)
	if err != nil {
		return "", err
	}

	currentRole, err := s.roles.FindByID(ctx, member.RoleID)
	if err != nil {
		return "", fmt.Errorf("resolving current role: %w", err)
	}

	if targetUserID == actingUserID {
		allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermManageAllUsers)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", model.PermManageAllUsers, err)
		}
		if !allowed {
			return "", domain.ErrCannotChangeOwnRole
		}
	}

	canChangeAny, err := s.checker.Check(ctx, actingUserID, companyID, model.PermChangeUserRoles)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", model.PermChangeUserRoles, err)
	}

	if !canChangeAny {
		canChangeRegular, err := s.checker.Check(ctx, actingUserID, companyID, model.PermChangeRegularUserRoles)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", model.PermChangeRegularUserRoles, err)
		}
		if !canChangeRegular {
			return "", domain.ErrForbidden
		}

		// Restricted changers may not touch privileged roles on either side.
		if authz.IsProtectedRole(currentRole) || authz.IsProtectedRole(newRole) {
			return "", domain.ErrForbidden
		}
	}

	// Demoting the last Owner leaves the company without one; refused the
	// same way removal is.
	if currentRole.IsDefault && currentRole.Name == model.RoleOwner && newRole.ID != currentRole.ID {
		holders, err := s.members.CountByRole(ctx, currentRole.ID)
		if err != nil {
			return "", fmt.Errorf("counting owners: %w", err)
		}
		if holders <= 1 {
			return "", domain.ErrLastOwner
		}
	}

	if err := s.members.UpdateRole(ctx, member.ID, newRoleID); err != nil {
		return "", err
	}

	syncMembershipDelete(ctx, s.syncer, companyID, targetUserID, currentRole.Name)
	syncMembershipWrite(ctx, s.syncer, companyID, targetUserID, newRole.Name)

	return newRole.Name, nil
}

// RemoveMember removes the target user from the company. The sole holder of
// the Owner role can never be removed; every company keeps at least one
// Owner.
func (s *MemberService) RemoveMember(ctx context.Context, companyID, targetUserID, actingUserID uuid.UUID) error {
	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermRemoveMembers)
	if err != nil {
		return fmt.Errorf("checking %s: %w", model.PermRemoveMembers, err)
	}
	if !allowed {
		return domain.ErrForbidden
	}

	member, err := s.members.FindByCompanyAndUser(ctx, companyID, targetUserID)
	if err != nil {
		return err
	}

	role, err := s.roles.FindByID(ctx, member.RoleID)
	if err != nil {
		return fmt.Errorf("resolving member role: %w", err)
	}

	if role.IsDefault && role.Name == model.RoleOwner {
		holders, err := s.members.CountByRole(ctx, role.ID)
		if err != nil {
			return fmt.Errorf("counting owners: %w", err)
		}
		if holders <= 1 {
			return domain.ErrLastOwner
		}
	}

	if err := s.members.Delete(ctx, member.ID); err != nil {
		return err
	}

	syncMembershipDelete(ctx, s.syncer, companyID, targetUserID, role.Name)

	return nil
}

// ListMembers returns the company's member list for callers holding
// view_members.
func (s *MemberService) ListMembers(ctx context.Context, companyID, actingUserID uuid.UUID) ([]*model.CompanyMember, error) {
	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermViewMembers)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", model.PermViewMembers, err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	members, err := s.members.FindByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return members, nil
}

// IsMember reports whether the user belongs to the company at all.
func (s *MemberService) IsMember(ctx context.Context, companyID, userID uuid.UUID) (bool, error) {
	_, err := s.members.FindByCompanyAndUser(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
