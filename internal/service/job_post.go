// internal/service/job_post.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/authz"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// JobPostService manages job posts. Authors with manage_own_job_posts can
// edit their own posts; manage_all_job_posts covers every post in the
// company.
type JobPostService struct {
	posts    repository.JobPostRepositoryIface
	members  repository.MemberRepositoryIface
	checker  authz.PermissionSource
	validate *validator.Validate
}

func NewJobPostService(
	posts repository.JobPostRepositoryIface,
	members repository.MemberRepositoryIface,
	checker authz.PermissionSource,
) *JobPostService {
	return &JobPostService{
		posts:    posts,
		members:  members,
		checker:  checker,
		validate: validator.New(),
	}
}

type CreateJobPostInput struct {
	Title          string               `json:"title" validate:"required,max=200"`
	Description    string               `json:"description" validate:"required"`
	Location       string               `json:"location" validate:"max=128"`
	EmploymentType model.EmploymentType `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	Publish        bool                 `json:"publish"`
}

func (s *JobPostService) CreateJobPost(ctx context.Context, companyID, actingUserID uuid.UUID, input CreateJobPostInput) (*model.JobPost, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	allowed, err := s.checker.Check(ctx, actingUserID, companyID, model.PermCreateJobPost)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", model.PermCreateJobPost, err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	employmentType := input.EmploymentType
	if employmentType == "" {
		employmentType = model.EmploymentFullTime
	}
	status := model.JobPostDraft
	if input.Publish {
		status = model.JobPostPublished
	}

	post := &model.JobPost{
		CompanyID:      companyID,
		AuthorID:       actingUserID,
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		EmploymentType: employmentType,
		Status:         status,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

type UpdateJobPostInput struct {
	Title          *string               `json:"title" validate:"omitempty,max=200"`
	Description    *string               `json:"description"`
	Location       *string               `json:"location" validate:"omitempty,max=128"`
	EmploymentType *model.EmploymentType `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	Status         *model.JobPostStatus  `json:"status" validate:"omitempty,oneof=draft published closed"`
}

func (s *JobPostService) UpdateJobPost(ctx context.Context, postID, actingUserID uuid.UUID, input UpdateJobPostInput) (*model.JobPost, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeManage(ctx, post, actingUserID); err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Location != nil {
		post.Location = *input.Location
	}
	if input.EmploymentType != nil {
		post.EmploymentType = *input.EmploymentType
	}
	if input.Status != nil {
		post.Status = *input.Status
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *JobPostService) DeleteJobPost(ctx context.Context, postID, actingUserID uuid.UUID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := s.authorizeManage(ctx, post, actingUserID); err != nil {
		return err
	}

	return s.posts.Delete(ctx, postID)
}

// ListJobPosts returns the company's posts. Members see drafts; everyone
// else only the published ones.
func (s *JobPostService) ListJobPosts(ctx context.Context, companyID, actingUserID uuid.UUID) ([]*model.JobPost, error) {
	includeDrafts := false
	if actingUserID != uuid.Nil {
		_, err := s.members.FindByCompanyAndUser(ctx, companyID, actingUserID)
		if err == nil {
			includeDrafts = true
		} else if !errors.Is(err, domain.ErrMemberNotFound) {
			return nil, err
		}
	}

	return s.posts.FindByCompany(ctx, companyID, includeDrafts)
}

func (s *JobPostService) authorizeManage(ctx context.Context, post *model.JobPost, actingUserID uuid.UUID) error {
	manageAll, err := s.checker.Check(ctx, actingUserID, post.CompanyID, model.PermManageAllJobPosts)
	if err != nil {
		return fmt.Errorf("checking %s: %w", model.PermManageAllJobPosts, err)
	}
	if manageAll {
		return nil
	}

	if post.AuthorID != actingUserID {
		return domain.ErrForbidden
	}

	manageOwn, err := s.checker.Check(ctx, actingUserID, post.CompanyID, model.PermManageOwnJobPosts)
	if err != nil {
		return fmt.Errorf("checking %s: %w", model.PermManageOwnJobPosts, err)
	}
	if !manageOwn {
		return domain.ErrForbidden
	}

	return nil
}
