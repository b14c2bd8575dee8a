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

func TestCreateJobPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	companyID := uuid.New()
	actingUserID := uuid.New()

	t.Run("publishing on create", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermCreateJobPost).
			Return(true, nil)
		postRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		post, err := svc.CreateJobPost(ctx, companyID, actingUserID, service.CreateJobPostInput{
			Title:       "Backend Engineer",
			Description: "Build the hiring pipeline.",
			Publish:     true,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.JobPostPublished, post.Status)
		assert.Equal(t, model.EmploymentFullTime, post.EmploymentType)
		assert.Equal(t, actingUserID, post.AuthorID)
	})

	t.Run("defaults to a draft", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermCreateJobPost).
			Return(true, nil)
		postRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		post, err := svc.CreateJobPost(ctx, companyID, actingUserID, service.CreateJobPostInput{
			Title:       "Backend Engineer",
			Description: "Build the hiring pipeline.",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.JobPostDraft, post.Status)
	})

	t.Run("rejects callers without create_job_post", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermCreateJobPost).
			Return(false, nil)

		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		_, err := svc.CreateJobPost(ctx, companyID, actingUserID, service.CreateJobPostInput{
			Title:       "Backend Engineer",
			Description: "Build the hiring pipeline.",
		})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestUpdateJobPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	companyID := uuid.New()
	authorID := uuid.New()

	post := func() *model.JobPost {
		return &model.JobPost{
			ID:          uuid.New(),
			CompanyID:   companyID,
			AuthorID:    authorID,
			Title:       "Backend Engineer",
			Description: "Build the hiring pipeline.",
			Status:      model.JobPostDraft,
		}
	}

	t.Run("author edits their own post", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		p := post()

		postRepo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		checker.EXPECT().
			Check(gomock.Any(), authorID, companyID, model.PermManageAllJobPosts).
			Return(false, nil)
		checker.EXPECT().
			Check(gomock.Any(), authorID, companyID, model.PermManageOwnJobPosts).
			Return(true, nil)
		postRepo.EXPECT().Update(gomock.Any(), p).Return(nil)

		title := "Senior Backend Engineer"
		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		updated, err := svc.UpdateJobPost(ctx, p.ID, authorID, service.UpdateJobPostInput{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, "Senior Backend Engineer", updated.Title)
	})

	t.Run("non-author without manage_all_job_posts is rejected", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		p := post()
		otherUserID := uuid.New()

		postRepo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		checker.EXPECT().
			Check(gomock.Any(), otherUserID, companyID, model.PermManageAllJobPosts).
			Return(false, nil)

		title := "Hijacked"
		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		_, err := svc.UpdateJobPost(ctx, p.ID, otherUserID, service.UpdateJobPostInput{Title: &title})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("manage_all_job_posts covers any post", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		p := post()
		adminID := uuid.New()

		postRepo.EXPECT().FindByID(gomock.Any(), p.ID).Return(p, nil)
		checker.EXPECT().
			Check(gomock.Any(), adminID, companyID, model.PermManageAllJobPosts).
			Return(true, nil)
		postRepo.EXPECT().Update(gomock.Any(), p).Return(nil)

		status := model.JobPostClosed
		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		updated, err := svc.UpdateJobPost(ctx, p.ID, adminID, service.UpdateJobPostInput{Status: &status})

		assert.NoError(t, err)
		assert.Equal(t, model.JobPostClosed, updated.Status)
	})
}

func TestListJobPosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	companyID := uuid.New()

	t.Run("members see drafts", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		userID := uuid.New()
		member := &model.CompanyMember{ID: uuid.New(), CompanyID: companyID, UserID: userID}

		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, userID).Return(member, nil)
		postRepo.EXPECT().FindByCompany(gomock.Any(), companyID, true).Return(nil, nil)

		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		_, err := svc.ListJobPosts(ctx, companyID, userID)

		assert.NoError(t, err)
	})

	t.Run("anonymous callers see only published posts", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		postRepo.EXPECT().FindByCompany(gomock.Any(), companyID, false).Return(nil, nil)

		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		_, err := svc.ListJobPosts(ctx, companyID, uuid.Nil)

		assert.NoError(t, err)
	})

	t.Run("non-member users see only published posts", func(t *testing.T) {
		postRepo := mocks.NewMockJobPostRepositoryIface(ctrl)
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		userID := uuid.New()

		memberRepo.EXPECT().
			FindByCompanyAndUser(gomock.Any(), companyID, userID).
			Return(nil, domain.ErrMemberNotFound)
		postRepo.EXPECT().FindByCompany(gomock.Any(), companyID, false).Return(nil, nil)

		svc := service.NewJobPostService(postRepo, memberRepo, checker)
		_, err := svc.ListJobPosts(ctx, companyID, userID)

		assert.NoError(t, err)
	})
}
