// internal/repository/job_post.go
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

type JobPostRepositoryIface interface {
	Create(ctx context.Context, post *model.JobPost) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.JobPost, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID, includeDrafts bool) ([]*model.JobPost, error)
	Update(ctx context.Context, post *model.JobPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type JobPostRepository struct {
	db *gorm.DB
}

func NewJobPostRepository(db *gorm.DB) *JobPostRepository {
	return &JobPostRepository{db: db}
}

func (r *JobPostRepository) Create(ctx context.Context, post *model.JobPost) error {
	result := r.db.WithContext(ctx).Create(post)
	if result.Error != nil {
		return fmt.Errorf("failed to create job post: %w", result.Error)
	}
	return nil
}

func (r *JobPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.JobPost, error) {
	var post model.JobPost
	result := r.db.WithContext(ctx).First(&post, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobPostNotFound
		}
		return nil, fmt.Errorf("failed to find job post: %w", result.Error)
	}
	return &post, nil
}

func (r *JobPostRepository) FindByCompany(ctx context.Context, companyID uuid.UUID, includeDrafts bool) ([]*model.JobPost, error) {
	query := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if !includeDrafts {
		query = query.Where("status = ?", model.JobPostPublished)
	}

	var posts []*model.JobPost
	result := query.Order("created_at DESC").Find(&posts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find job posts: %w", result.Error)
	}
	return posts, nil
}

func (r *JobPostRepository) Update(ctx context.Context, post *model.JobPost) error {
	result := r.db.WithContext(ctx).Save(post)
	if result.Error != nil {
		return fmt.Errorf("failed to update job post: %w", result.Error)
	}
	return nil
}

func (r *JobPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.JobPost{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete job post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrJobPostNotFound
	}
	return nil
}
