// internal/repository/invitation.go
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

type InvitationRepositoryIface interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error)
	FindPendingByCompanyAndEmail(ctx context.Context, companyID uuid.UUID, email string) (*model.Invitation, error)
	FindPreAcceptedByEmail(ctx context.Context, email string) ([]*model.Invitation, error)
	DeletePending(ctx context.Context, id uuid.UUID) (bool, error)
	MarkPreAccepted(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InvitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	result := r.db.WithContext(ctx).Create(invitation)
	if result.Error != nil {
		return fmt.Errorf("failed to create invitation: %w", result.Error)
	}
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Invitation, error) {
	var invitation model.Invitation
	result := r.db.WithContext(ctx).
		Preload("Role").
		First(&invitation, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find invitation: %w", result.Error)
	}
	return &invitation, nil
}

func (r *InvitationRepository) FindPendingByCompanyAndEmail(ctx context.Context, companyID uuid.UUID, email string) (*model.Invitation, error) {
	var invitation model.Invitation
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND email = ? AND status = ?", companyID, email, model.InvitationPending).
		First(&invitation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to find pending invitation: %w", result.Error)
	}
	return &invitation, nil
}

// FindPreAcceptedByEmail returns invitations accepted before the invitee had
// an account, for completion at first login.
func (r *InvitationRepository) FindPreAcceptedByEmail(ctx context.Context, email string) ([]*model.Invitation, error) {
	var invitations []*model.Invitation
	result := r.db.WithContext(ctx).
		Preload("Role").
		Where("email = ? AND status = ?", email, model.InvitationPreAccepted).
		Find(&invitations)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find pre-accepted invitations: %w", result.Error)
	}
	return invitations, nil
}

// DeletePending removes the invitation only while it is still pending and
// reports whether a row was removed. Zero rows means another request resolved
// it first.
func (r *InvitationRepository) DeletePending(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, model.InvitationPending).
		Delete(&model.Invitation{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete invitation: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// MarkPreAccepted transitions a pending invitation to pre_accepted and
// reports whether the row was still pending.
func (r *InvitationRepository) MarkPreAccepted(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Invitation{}).
		Where("id = ? AND status = ?", id, model.InvitationPending).
		Update("status", model.InvitationPreAccepted)
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark invitation pre-accepted: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *InvitationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Invitation{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete invitation: %w", result.Error)
	}
	return nil
}
