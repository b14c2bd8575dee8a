// internal/model/job_post.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type JobPostStatus string

const (
	JobPostDraft     JobPostStatus = "draft"
	JobPostPublished JobPostStatus = "published"
	JobPostClosed    JobPostStatus = "closed"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

type JobPost struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	AuthorID       uuid.UUID      `gorm:"type:uuid;not null" json:"author_id"`
	Title          string         `gorm:"type:text;not null" json:"title"`
	Description    string         `gorm:"type:text;not null" json:"description"`
	Location       string         `gorm:"type:text" json:"location,omitempty"`
	EmploymentType EmploymentType `gorm:"type:employment_type;not null;default:'full_time'" json:"employment_type"`
	Status         JobPostStatus  `gorm:"type:job_post_status;not null;default:'draft'" json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
	Author  User    `gorm:"foreignKey:AuthorID" json:"-"`
}
