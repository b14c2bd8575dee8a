// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")

	// Company-related errors
	ErrCompanyNotFound = errors.New("company not found")
	ErrHandleTaken     = errors.New("company handle already taken")

	// Role-related errors
	ErrRoleNotFound          = errors.New("role not found")
	ErrProtectedRole         = errors.New("role is protected and cannot be modified")
	ErrInvalidTransferTarget = errors.New("invalid transfer target role")
	ErrRoleOutranksActor     = errors.New("role outranks acting user's role")

	// Membership-related errors
	ErrMemberNotFound      = errors.New("member not found")
	ErrAlreadyMember       = errors.New("user is already a member of this company")
	ErrLastOwner           = errors.New("company must retain at least one owner")
	ErrCannotChangeOwnRole = errors.New("cannot change own role")

	// Invitation-related errors
	ErrInvitationNotFound  = errors.New("invitation not found")
	ErrDuplicateInvitation = errors.New("a pending invitation already exists for this email")
	ErrInvitationResolved  = errors.New("invitation was already resolved")
	ErrInvitationExpired   = errors.New("invitation has expired")

	// Job post errors
	ErrJobPostNotFound = errors.New("job post not found")
)
