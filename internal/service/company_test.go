package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/mocks"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	creatorID := uuid.New()

	t.Run("seeds default roles and migrates the creator", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		creator := &model.User{ID: creatorID, Email: "founder@example.com", AccountType: model.AccountPersonal}

		userRepo.EXPECT().FindByID(gomock.Any(), creatorID).Return(creator, nil)
		companyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), model.DefaultRoles()).
			DoAndReturn(func(_ context.Context, company *model.Company, _ []model.DefaultRole) error {
				assert.Equal(t, "acme", company.Handle)
				assert.Equal(t, creatorID, company.CreatedByID)
				return nil
			})
		userRepo.EXPECT().UpdateAccountType(gomock.Any(), creatorID, model.AccountCompany).Return(nil)

		svc := service.NewCompanyService(companyRepo, userRepo, checker)
		company, err := svc.CreateCompany(ctx, creatorID, service.CreateCompanyInput{
			Name:   "Acme Inc",
			Handle: "acme",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Inc", company.Name)
	})

	t.Run("mirrors the creator's ownership into the relationship backend", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)
		syncer := mocks.NewMockRelationshipSyncer(ctrl)

		creator := &model.User{ID: creatorID, Email: "founder@example.com", AccountType: model.AccountCompany}

		userRepo.EXPECT().FindByID(gomock.Any(), creatorID).Return(creator, nil)
		companyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), model.DefaultRoles()).
			DoAndReturn(func(_ context.Context, company *model.Company, _ []model.DefaultRole) error {
				company.ID = uuid.New()
				return nil
			})
		syncer.EXPECT().
			WriteMembership(gomock.Any(), gomock.Any(), creatorID, "owner").
			Return(nil)

		svc := service.NewCompanyService(companyRepo, userRepo, checker)
		svc.SetRelationshipSyncer(syncer)
		_, err := svc.CreateCompany(ctx, creatorID, service.CreateCompanyInput{
			Name:   "Acme Sync",
			Handle: "acmesync",
		})

		assert.NoError(t, err)
	})

	t.Run("company account creators are not migrated again", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		creator := &model.User{ID: creatorID, Email: "founder@example.com", AccountType: model.AccountCompany}

		userRepo.EXPECT().FindByID(gomock.Any(), creatorID).Return(creator, nil)
		companyRepo.EXPECT().Create(gomock.Any(), gomock.Any(), model.DefaultRoles()).Return(nil)

		svc := service.NewCompanyService(companyRepo, userRepo, checker)
		_, err := svc.CreateCompany(ctx, creatorID, service.CreateCompanyInput{
			Name:   "Acme Two",
			Handle: "acmetwo",
		})

		assert.NoError(t, err)
	})

	t.Run("taken handle surfaces as a conflict", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		creator := &model.User{ID: creatorID, AccountType: model.AccountPersonal}

		userRepo.EXPECT().FindByID(gomock.Any(), creatorID).Return(creator, nil)
		companyRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), model.DefaultRoles()).
			Return(domain.ErrHandleTaken)

		svc := service.NewCompanyService(companyRepo, userRepo, checker)
		_, err := svc.CreateCompany(ctx, creatorID, service.CreateCompanyInput{
			Name:   "Acme Inc",
			Handle: "acme",
		})

		assert.ErrorIs(t, err, domain.ErrHandleTaken)
	})

	t.Run("rejects an invalid handle", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		svc := service.NewCompanyService(companyRepo, userRepo, checker)
		_, err := svc.CreateCompany(ctx, creatorID, service.CreateCompanyInput{
			Name:   "Acme Inc",
			Handle: "not a handle!",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	companyID := uuid.New()
	actingUserID := uuid.New()

	t.Run("edits the profile with manage_company", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		company := &model.Company{ID: companyID, Name: "Acme Inc", Handle: "acme"}

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermManageCompany).
			Return(true, nil)
		companyRepo.EXPECT().FindByID(gomock.Any(), companyID).Return(company, nil)
		companyRepo.EXPECT().Update(gomock.Any(), company).Return(nil)

		name := "Acme Corporation"
		svc := service.NewCompanyService(companyRepo, userRepo, checker)
		updated, err := svc.UpdateCompany(ctx, companyID, actingUserID, service.UpdateCompanyInput{Name: &name})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Corporation", updated.Name)
		assert.Equal(t, "acme", updated.Handle)
	})

	t.Run("rejects callers without manage_company", func(t *testing.T) {
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermManageCompany).
			Return(false, nil)

		svc := service.NewCompanyService(companyRepo, userRepo, checker)
		_, err := svc.UpdateCompany(ctx, companyID, actingUserID, service.UpdateCompanyInput{})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
