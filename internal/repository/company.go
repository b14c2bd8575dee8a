// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company, seed []model.DefaultRole) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindByHandle(ctx context.Context, handle string) (*model.Company, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Company, error)
	Update(ctx context.Context, company *model.Company) error
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts the company, seeds its default roles with their grants, and
// enrolls the creator as the first Owner, all in one transaction.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company, seed []model.DefaultRole) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Company{}).
			Where("handle = ?", company.Handle).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking handle availability: %w", err)
		}
		if count > 0 {
			return domain.ErrHandleTaken
		}

		if err := tx.Create(company).Error; err != nil {
			// The handle pre-check above races against concurrent creates;
			// the unique index has the final word.
			if isUniqueViolation(err) {
				return domain.ErrHandleTaken
			}
			return fmt.Errorf("creating company: %w", err)
		}

		var ownerRole *model.Role
		for _, def := range seed {
			role := &model.Role{
				CompanyID: company.ID,
				Name:      def.Name,
				Color:     def.Color,
				Position:  def.Position,
				IsDefault: true,
			}
			if err := tx.Create(role).Error; err != nil {
				return fmt.Errorf("seeding role %s: %w", def.Name, err)
			}
			for _, perm := range def.Permissions {
				grant := &model.RolePermission{
					RoleID:     role.ID,
					Permission: perm,
					Enabled:    true,
				}
				if err := tx.Create(grant).Error; err != nil {
					return fmt.Errorf("seeding grant %s for %s: %w", perm, def.Name, err)
				}
			}
			if ownerRole == nil || role.Position > ownerRole.Position {
				ownerRole = role
			}
		}

		if ownerRole == nil {
			return fmt.Errorf("no roles seeded for company %s", company.ID)
		}

		member := &model.CompanyMember{
			CompanyID: company.ID,
			UserID:    company.CreatedByID,
			RoleID:    ownerRole.ID,
		}
		if err := tx.Create(member).Error; err != nil {
			return fmt.Errorf("enrolling owner: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrHandleTaken) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) FindByHandle(ctx context.Context, handle string) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Where("handle = ?", handle).First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company by handle: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.WithContext(ctx).
		Joins("JOIN company_members ON companies.id = company_members.company_id").
		Where("company_members.user_id = ?", userID).
		Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("finding user companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("updating company: %w", err)
	}
	return nil
}
