// internal/service/role.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/authz"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// RoleService manages company roles and their permission grants.
type RoleService struct {
	roles    repository.RoleRepositoryIface
	members  repository.MemberRepositoryIface
	checker  authz.PermissionSource
	validate *validator.Validate
}

func NewRoleService(
	roles repository.RoleRepositoryIface,
	members repository.MemberRepositoryIface,
	checker authz.PermissionSource,
) *RoleService {
	return &RoleService{
		roles:    roles,
		members:  members,
		checker:  checker,
		validate: validator.New(),
	}
}

type CreateRoleInput struct {
	Name        string   `json:"name" validate:"required,max=64"`
	Color       string   `json:"color" validate:"omitempty,hexcolor"`
	Position    int      `json:"position" validate:"gte=0"`
	Permissions []string `json:"permissions"`
}

// CreateRole adds a custom role to the company. The new role must rank below
// the acting user's own role.
func (s *RoleService) CreateRole(ctx context.Context, companyID, actingUserID uuid.UUID, input CreateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermManageRoles)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", model.PermManageRoles, err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	actingRole, err := s.actingRole(ctx, companyID, actingUserID)
	if err != nil {
		return nil, err
	}
	if input.Position >= actingRole.Position {
		return nil, domain.ErrRoleOutranksActor
	}

	role := &model.Role{
		CompanyID: companyID,
		Name:      input.Name,
		Color:     input.Color,
		Position:  input.Position,
	}

	if err := s.roles.Create(ctx, role, input.Permissions); err != nil {
		return nil, err
	}

	return role, nil
}

type UpdateRoleInput struct {
	Name        *string  `json:"name" validate:"omitempty,max=64"`
	Color       *string  `json:"color" validate:"omitempty,hexcolor"`
	Position    *int     `json:"position" validate:"omitempty,gte=0"`
	Permissions []string `json:"permissions"`
}

// UpdateRole edits a role's name, color, position or grants. Default roles
// cannot be renamed.
func (s *RoleService) UpdateRole(ctx context.Context, companyID, roleID, actingUserID uuid.UUID, input UpdateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermManageRoles)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", model.PermManageRoles, err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role.CompanyID != companyID {
		return nil, domain.ErrRoleNotFound
	}

	if input.Name != nil && *input.Name != role.Name {
		if role.IsDefault {
			return nil, domain.ErrProtectedRole
		}
		role.Name = *input.Name
	}
	if input.Color != nil {
		role.Color = *input.Color
	}
	if input.Position != nil && *input.Position != role.Position {
		if role.IsDefault {
			return nil, domain.ErrProtectedRole
		}
		actingRole, err := s.actingRole(ctx, companyID, actingUserID)
		if err != nil {
			return nil, err
		}
		if *input.Position >= actingRole.Position {
			return nil, domain.ErrRoleOutranksActor
		}
		role.Position = *input.Position
	}

	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}

	if input.Permissions != nil {
		if err := s.roles.SetGrants(ctx, role.ID, input.Permissions); err != nil {
			return nil, err
		}
	}

	return role, nil
}

// DeleteRole removes a custom role, reassigning every member holding it to
// the transfer role first. Default roles cannot be deleted.
func (s *RoleService) DeleteRole(ctx context.Context, companyID, roleID, transferToRoleID, actingUserID uuid.UUID) error {
	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermManageRoles)
	if err != nil {
		return fmt.Errorf("checking %s: %w", model.PermManageRoles, err)
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if roleID == transferToRoleID {
		return domain.ErrInvalidTransferTarget
	}

	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.CompanyID != companyID {
		return domain.ErrRoleNotFound
	}
	if role.IsDefault {
		return domain.ErrProtectedRole
	}

	transferRole, err := s.roles.FindByID(ctx, transferToRoleID)
	if err != nil {
		return err
	}
	if transferRole.CompanyID != companyID {
		return domain.ErrRoleNotFound
	}

	return s.roles.DeleteWithTransfer(ctx, roleID, transferToRoleID)
}

// ListRoles returns the company's roles, most senior first.
func (s *RoleService) ListRoles(ctx context.Context, companyID, actingUserID uuid.UUID) ([]*model.Role, error) {
	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermViewMembers)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", model.PermViewMembers, err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	return s.roles.FindByCompany(ctx, companyID)
}

func (s *RoleService) actingRole(ctx context.Context, companyID, actingUserID uuid.UUID) (*model.Role, error) {
	member, err := s.members.FindByCompanyAndUser(ctx, companyID, actingUserID)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.FindByID(ctx, member.RoleID)
	if err != nil {
		return nil, fmt.Errorf("resolving acting role: %w", err)
	}
	return role, nil
}
