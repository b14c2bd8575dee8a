// internal/repository/member.go
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

type MemberRepositoryIface interface {
	Create(ctx context.Context, member *model.CompanyMember) error
	FindByCompanyAndUser(ctx context.Context, companyID, userID uuid.UUID) (*model.CompanyMember, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.CompanyMember, error)
	UpdateRole(ctx context.Context, memberID, roleID uuid.UUID) error
	Delete(ctx context.Context, memberID uuid.UUID) error
	CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error)
}

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *model.CompanyMember) error {
	result := r.db.WithContext(ctx).Create(member)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrAlreadyMember
		}
		return fmt.Errorf("failed to create member: %w", result.Error)
	}
	return nil
}

func (r *MemberRepository) FindByCompanyAndUser(ctx context.Context, companyID, userID uuid.UUID) (*model.CompanyMember, error) {
	var member model.CompanyMember
	result := r.db.WithContext(ctx).
		Preload("Role").
		Where("company_id = ? AND user_id = ?", companyID, userID).
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", result.Error)
	}
	return &member, nil
}

func (r *MemberRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.CompanyMember, error) {
	var members []*model.CompanyMember
	result := r.db.WithContext(ctx).
		Preload("Role").
		Preload("User").
		Where("company_id = ?", companyID).
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find company members: %w", result.Error)
	}
	return members, nil
}

// UpdateRole is an atomic single-row role reassignment. Concurrent changes
// on the same row resolve last-write-wins at the storage layer.
func (r *MemberRepository) UpdateRole(ctx context.Context, memberID, roleID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.CompanyMember{}).
		Where("id = ?", memberID).
		Update("role_id", roleID)
	if result.Error != nil {
		return fmt.Errorf("failed to update member role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, memberID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CompanyMember{}, "id = ?", memberID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// CountByRole counts memberships currently holding the given role.
func (r *MemberRepository) CountByRole(ctx context.Context, roleID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.CompanyMember{}).
		Where("role_id = ?", roleID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count members by role: %w", err)
	}
	return count, nil
}
