// internal/service/invitation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/authz"
	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/email"
	"github.com/hireloop/hireloop/internal/email/mailer"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/repository"
)

// InvitationService owns the invitation lifecycle: creation by a member with
// invite permission, and resolution (accept or reject) by the invitee.
type InvitationService struct {
	invitations  repository.InvitationRepositoryIface
	members      repository.MemberRepositoryIface
	roles        repository.RoleRepositoryIface
	users        repository.UserRepositoryIface
	companies    repository.CompanyRepositoryIface
	checker      authz.PermissionSource
	syncer       authz.RelationshipSyncer
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
}

// SetRelationshipSyncer mirrors memberships created through invitation
// acceptance into an external authorization backend. Optional.
func (s *InvitationService) SetRelationshipSyncer(syncer authz.RelationshipSyncer) {
	s.syncer = syncer
}

func NewInvitationService(
	invitations repository.InvitationRepositoryIface,
	members repository.MemberRepositoryIface,
	roles repository.RoleRepositoryIface,
	users repository.UserRepositoryIface,
	companies repository.CompanyRepositoryIface,
	checker authz.PermissionSource,
	emailService *email.Service,
	config *config.Config,
) *InvitationService {
	return &InvitationService{
		invitations:  invitations,
		members:      members,
		roles:        roles,
		users:        users,
		companies:    companies,
		checker:      checker,
		emailService: emailService,
		config:       config,
		validate:     validator.New(),
	}
}

type CreateInvitationInput struct {
	Email   string    `json:"email" validate:"required,email"`
	RoleID  uuid.UUID `json:"role_id" validate:"required"`
	Message string    `json:"message" validate:"max=1000"`
}

// CreateInvitation invites an email address into the company with the given
// role. The inviter needs invite_users and must outrank the invited role. A
// pending invitation for the same (company, email) pair is a conflict, not an
// upsert. Email dispatch failure is logged and does not fail the operation.
func (s *InvitationService) CreateInvitation(ctx context.Context, companyID, inviterID uuid.UUID, input CreateInvitationInput) (*model.Invitation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	allowed, err := s.checker.Check(ctx, inviterID, companyID, model.PermInviteUsers)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", model.PermInviteUsers, err)
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	role, err := s.roles.FindByID(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}
	if role.CompanyID != companyID {
		return nil, domain.ErrRoleNotFound
	}

	inviterMember, err := s.members.FindByCompanyAndUser(ctx, companyID, inviterID)
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	inviterRole, err := s.roles.FindByID(ctx, inviterMember.RoleID)
	if err != nil {
		return nil, fmt.Errorf("resolving inviter role: %w", err)
	}
	if !authz.CanAssignRole(inviterRole, role) {
		return nil, domain.ErrRoleOutranksActor
	}

	existing, err := s.invitations.FindPendingByCompanyAndEmail(ctx, companyID, input.Email)
	if err != nil && !errors.Is(err, domain.ErrInvitationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateInvitation
	}

	invitation := &model.Invitation{
		CompanyID: companyID,
		RoleID:    role.ID,
		InviterID: inviterID,
		Email:     input.Email,
		Message:   input.Message,
		Status:    model.InvitationPending,
		ExpiresAt: time.Now().UTC().Add(model.InvitationTTL),
	}

	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, err
	}

	s.sendInvitationEmail(ctx, invitation, role)

	return invitation, nil
}

// ResolveAction is what the invitee chose to do with an invitation.
type ResolveAction string

const (
	ResolveAccept ResolveAction = "accept"
	ResolveReject ResolveAction = "reject"
)

// ResolveResult reports what resolving an invitation did.
type ResolveResult struct {
	Invitation        *model.Invitation
	MembershipCreated bool
	// PreAccepted is set when the invitee has no account yet; membership
	// creation completes at first login.
	PreAccepted bool
}

// ResolveInvitation accepts or rejects an invitation. Races between two
// resolutions of the same invitation are settled by a conditional delete:
// the loser gets ErrInvitationResolved.
//
// Accepting with a personal account migrates that account to a company
// account; this is a documented post-condition, not a hidden side effect.
func (s *InvitationService) ResolveInvitation(ctx context.Context, invitationID uuid.UUID, action ResolveAction, actingUserID uuid.UUID) (*ResolveResult, error) {
	invitation, err := s.invitations.FindByID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	switch action {
	case ResolveReject:
		removed, err := s.invitations.DeletePending(ctx, invitationID)
		if err != nil {
			return nil, err
		}
		if !removed {
			return nil, domain.ErrInvitationResolved
		}
		return &ResolveResult{Invitation: invitation}, nil

	case ResolveAccept:
		return s.accept(ctx, invitation, actingUserID)

	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, action)
	}
}

func (s *InvitationService) accept(ctx context.Context, invitation *model.Invitation, actingUserID uuid.UUID) (*ResolveResult, error) {
	if invitation.Status != model.InvitationPending {
		return nil, domain.ErrInvitationResolved
	}
	if invitation.Expired(time.Now().UTC()) {
		return nil, domain.ErrInvitationExpired
	}

	// No account yet: park the invitation so first-login bootstrap can
	// finish the membership.
	if actingUserID == uuid.Nil {
		marked, err := s.invitations.MarkPreAccepted(ctx, invitation.ID)
		if err != nil {
			return nil, err
		}
		if !marked {
			return nil, domain.ErrInvitationResolved
		}
		return &ResolveResult{Invitation: invitation, PreAccepted: true}, nil
	}

	user, err := s.users.FindByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	// Both columns are citext; match the database's case folding.
	if !strings.EqualFold(user.Email, invitation.Email) {
		return nil, domain.ErrForbidden
	}

	alreadyMember := false
	if _, err := s.members.FindByCompanyAndUser(ctx, invitation.CompanyID, user.ID); err == nil {
		alreadyMember = true
	} else if !errors.Is(err, domain.ErrMemberNotFound) {
		return nil, err
	}

	// The conditional delete is the claim; whoever removes the pending row
	// completes the acceptance.
	removed, err := s.invitations.DeletePending(ctx, invitation.ID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, domain.ErrInvitationResolved
	}

	if alreadyMember {
		return &ResolveResult{Invitation: invitation}, nil
	}

	member := &model.CompanyMember{
		CompanyID: invitation.CompanyID,
		UserID:    user.ID,
		RoleID:    invitation.RoleID,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	syncMembershipWrite(ctx, s.syncer, invitation.CompanyID, user.ID, invitation.Role.Name)

	if user.AccountType == model.AccountPersonal {
		if err := s.users.UpdateAccountType(ctx, user.ID, model.AccountCompany); err != nil {
			return nil, fmt.Errorf("migrating account type: %w", err)
		}
	}

	return &ResolveResult{Invitation: invitation, MembershipCreated: true}, nil
}

// CompletePreAccepted finishes invitations the user accepted before their
// account existed. Called from signup and login bootstrap; company
// invitations found here also migrate a personal account.
func (s *InvitationService) CompletePreAccepted(ctx context.Context, user *model.User) error {
	invitations, err := s.invitations.FindPreAcceptedByEmail(ctx, user.Email)
	if err != nil {
		return err
	}

	joined := false
	for _, invitation := range invitations {
		_, err := s.members.FindByCompanyAndUser(ctx, invitation.CompanyID, user.ID)
		if err == nil {
			if err := s.invitations.Delete(ctx, invitation.ID); err != nil {
				return err
			}
			continue
		}
		if !errors.Is(err, domain.ErrMemberNotFound) {
			return err
		}

		member := &model.CompanyMember{
			CompanyID: invitation.CompanyID,
			UserID:    user.ID,
			RoleID:    invitation.RoleID,
		}
		if err := s.members.Create(ctx, member); err != nil {
			return err
		}
		syncMembershipWrite(ctx, s.syncer, invitation.CompanyID, user.ID, invitation.Role.Name)
		if err := s.invitations.Delete(ctx, invitation.ID); err != nil {
			return err
		}
		joined = true
	}

	if joined && user.AccountType == model.AccountPersonal {
		if err := s.users.UpdateAccountType(ctx, user.ID, model.AccountCompany); err != nil {
			return fmt.Errorf("migrating account type: %w", err)
		}
		user.AccountType = model.AccountCompany
	}

	return nil
}

func (s *InvitationService) sendInvitationEmail(ctx context.Context, invitation *model.Invitation, role *model.Role) {
	if s.emailService == nil {
		return
	}

	company, err := s.companies.FindByID(ctx, invitation.CompanyID)
	if err != nil {
		slog.WarnContext(ctx, "skipping invitation email", "error", err, "invitation_id", invitation.ID)
		return
	}
	inviter, err := s.users.FindByID(ctx, invitation.InviterID)
	if err != nil {
		slog.WarnContext(ctx, "skipping invitation email", "error", err, "invitation_id", invitation.ID)
		return
	}

	invitationURL := fmt.Sprintf("%s/invitations/%s", s.config.BaseURL, invitation.ID)

	if err := mailer.SendInvitationEmail(
		s.emailService,
		invitation.Email,
		inviter.FullName(),
		company.Name,
		company.Handle,
		role.Name,
		invitation.Message,
		invitationURL,
	); err != nil {
		slog.WarnContext(ctx, "failed to send invitation email",
			"error", err,
			"invitation_id", invitation.ID,
			"company_id", invitation.CompanyID,
		)
	}
}
