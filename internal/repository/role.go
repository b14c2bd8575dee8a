// internal/repository/role.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/model"
	"gorm.io/gorm"
)

type RoleRepositoryIface interface {
	Create(ctx context.Context, role *model.Role, permissions []string) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Role, error)
	FindByCompanyAndName(ctx context.Context, companyID uuid.UUID, name string) (*model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	SetGrants(ctx context.Context, roleID uuid.UUID, permissions []string) error
	HasGrant(ctx context.Context, roleID uuid.UUID, permission string) (bool, error)
	DeleteWithTransfer(ctx context.Context, roleID, transferToRoleID uuid.UUID) error
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role, permissions []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return fmt.Errorf("creating role: %w", err)
		}
		for _, perm := range permissions {
			grant := &model.RolePermission{RoleID: role.ID, Permission: perm, Enabled: true}
			if err := tx.Create(grant).Error; err != nil {
				return fmt.Errorf("granting %s: %w", perm, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("finding role: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Role, error) {
	var roles []*model.Role
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("position DESC, created_at ASC").
		Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("finding company roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) FindByCompanyAndName(ctx context.Context, companyID uuid.UUID, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND name = ?", companyID, name).
		First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("finding role by name: %w", err)
	}
	return &role, nil
}

func (r *RoleRepository) Update(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Save(role).Error; err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	return nil
}

// SetGrants replaces the role's grant rows with the given permission set.
func (r *RoleRepository) SetGrants(ctx context.Context, roleID uuid.UUID, permissions []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&model.RolePermission{}).Error; err != nil {
			return fmt.Errorf("clearing grants: %w", err)
		}
		for _, perm := range permissions {
			grant := &model.RolePermission{RoleID: roleID, Permission: perm, Enabled: true}
			if err := tx.Create(grant).Error; err != nil {
				return fmt.Errorf("granting %s: %w", perm, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// HasGrant reports whether the role has the named permission enabled.
// A missing row means denied.
func (r *RoleRepository) HasGrant(ctx context.Context, roleID uuid.UUID, permission string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.RolePermission{}).
		Where("role_id = ? AND permission = ? AND enabled = ?", roleID, permission, true).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking grant: %w", err)
	}
	return count > 0, nil
}

// DeleteWithTransfer reassigns every membership holding roleID to
// transferToRoleID, then removes the role and its grant rows. The whole
// sequence runs in one transaction so no membership is ever left pointing at
// a deleted role.
func (r *RoleRepository) DeleteWithTransfer(ctx context.Context, roleID, transferToRoleID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CompanyMember{}).
			Where("role_id = ?", roleID).
			Update("role_id", transferToRoleID).Error; err != nil {
			return fmt.Errorf("transferring members: %w", err)
		}
		if err := tx.Where("role_id = ?", roleID).Delete(&model.RolePermission{}).Error; err != nil {
			return fmt.Errorf("deleting grants: %w", err)
		}
		if err := tx.Delete(&model.Role{}, "id = ?", roleID).Error; err != nil {
			return fmt.Errorf("deleting role: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
