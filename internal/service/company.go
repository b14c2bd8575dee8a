// internal/service/company.go
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

// CompanyService manages company lifecycle. Creating a company seeds its
// default roles and enrolls the creator as the first Owner.
type CompanyService struct {
	companies repository.CompanyRepositoryIface
	users     repository.UserRepositoryIface
	checker   authz.PermissionSource
	syncer    authz.RelationshipSyncer
	validate  *validator.Validate
}

// SetRelationshipSyncer mirrors the creator's Owner membership into an
// external authorization backend. Optional.
func (s *CompanyService) SetRelationshipSyncer(syncer authz.RelationshipSyncer) {
	s.syncer = syncer
}

func NewCompanyService(
	companies repository.CompanyRepositoryIface,
	users repository.UserRepositoryIface,
	checker authz.PermissionSource,
) *CompanyService {
	return &CompanyService{
		companies: companies,
		users:     users,
		checker:   checker,
		validate:  validator.New(),
	}
}

type CreateCompanyInput struct {
	Name        string `json:"name" validate:"required,max=128"`
	Handle      string `json:"handle" validate:"required,min=2,max=40,alphanum"`
	Description string `json:"description" validate:"max=2000"`
	Website     string `json:"website" validate:"omitempty,url"`
}

// CreateCompany creates the company with its seeded default roles and makes
// the creator its first Owner. A personal creator account becomes a company
// account.
func (s *CompanyService) CreateCompany(ctx context.Context, creatorID uuid.UUID, input CreateCompanyInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	creator, err := s.users.FindByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	company := &model.Company{
		Name:        input.Name,
		Handle:      input.Handle,
		Description: input.Description,
		Website:     input.Website,
		CreatedByID: creator.ID,
	}

	if err := s.companies.Create(ctx, company, model.DefaultRoles()); err != nil {
		return nil, err
	}

	syncMembershipWrite(ctx, s.syncer, company.ID, creator.ID, model.RoleOwner)

	if creator.AccountType == model.AccountPersonal {
		if err := s.users.UpdateAccountType(ctx, creator.ID, model.AccountCompany); err != nil {
			return nil, fmt.Errorf("migrating account type: %w", err)
		}
	}

	return company, nil
}

type UpdateCompanyInput struct {
	Name        *string `json:"name" validate:"omitempty,max=128"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Website     *string `json:"website" validate:"omitempty,url"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

// UpdateCompany edits the company profile for callers holding
// manage_company. The handle is immutable.
func (s *CompanyService) UpdateCompany(ctx context.Context, companyID, actingUserID uuid.UUID, input UpdateCompanyInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermManageCompany)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", model.PermManageCompany, err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	company, err := s.companies.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.LogoURL != nil {
		company.LogoURL = *input.LogoURL
	}

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetCompany returns a company by id.
func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// GetCompanyByHandle returns a company by its unique handle.
func (s *CompanyService) GetCompanyByHandle(ctx context.Context, handle string) (*model.Company, error) {
	return s.companies.FindByHandle(ctx, handle)
}

// ListUserCompanies returns the companies the user belongs to.
func (s *CompanyService) ListUserCompanies(ctx context.Context, userID uuid.UUID) ([]model.Company, error) {
	return s.companies.FindByUser(ctx, userID)
}
