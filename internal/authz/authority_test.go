package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/authz"
	"github.com/hireloop/hireloop/internal/domain"
	"github.com/hireloop/hireloop/internal/mocks"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHasPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	companyID := uuid.New()
	roleID := uuid.New()

	member := &model.CompanyMember{
		ID:        uuid.New(),
		CompanyID: companyID,
		UserID:    userID,
		RoleID:    roleID,
	}

	t.Run("granted permission is allowed", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)

		memberRepo.EXPECT().
			FindByCompanyAndUser(gomock.Any(), companyID, userID).
			Return(member, nil)
		roleRepo.EXPECT().
			HasGrant(gomock.Any(), roleID, model.PermInviteUsers).
			Return(true, nil)

		authority := authz.NewAuthority(memberRepo, roleRepo, nil)
		allowed, err := authority.HasPermission(ctx, userID, companyID, model.PermInviteUsers)

		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("missing grant is denied", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)

		memberRepo.EXPECT().
			FindByCompanyAndUser(gomock.Any(), companyID, userID).
			Return(member, nil)
		roleRepo.EXPECT().
			HasGrant(gomock.Any(), roleID, model.PermManageRoles).
			Return(false, nil)

		authority := authz.NewAuthority(memberRepo, roleRepo, nil)
		allowed, err := authority.HasPermission(ctx, userID, companyID, model.PermManageRoles)

		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("non-member is denied without error", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)

		memberRepo.EXPECT().
			FindByCompanyAndUser(gomock.Any(), companyID, userID).
			Return(nil, domain.ErrMemberNotFound)

		authority := authz.NewAuthority(memberRepo, roleRepo, nil)
		allowed, err := authority.HasPermission(ctx, userID, companyID, model.PermViewMembers)

		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("storage failure denies and surfaces the error", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)

		memberRepo.EXPECT().
			FindByCompanyAndUser(gomock.Any(), companyID, userID).
			Return(nil, errors.New("connection reset"))

		authority := authz.NewAuthority(memberRepo, roleRepo, nil)
		allowed, err := authority.HasPermission(ctx, userID, companyID, model.PermViewMembers)

		assert.Error(t, err)
		assert.False(t, allowed)
	})

	t.Run("grant lookup failure denies and surfaces the error", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)

		memberRepo.EXPECT().
			FindByCompanyAndUser(gomock.Any(), companyID, userID).
			Return(member, nil)
		roleRepo.EXPECT().
			HasGrant(gomock.Any(), roleID, model.PermViewMembers).
			Return(false, errors.New("connection reset"))

		authority := authz.NewAuthority(memberRepo, roleRepo, nil)
		allowed, err := authority.HasPermission(ctx, userID, companyID, model.PermViewMembers)

		assert.Error(t, err)
		assert.False(t, allowed)
	})
}

func TestCanAssignRole(t *testing.T) {
	owner := &model.Role{Name: model.RoleOwner, Position: 50}
	admin := &model.Role{Name: model.RoleAdmin, Position: 40}
	hr := &model.Role{Name: model.RoleHR, Position: 30}
	member := &model.Role{Name: model.RoleMember, Position: 10}

	tests := []struct {
		name   string
		acting *model.Role
		target *model.Role
		want   bool
	}{
		{"owner assigns admin", owner, admin, true},
		{"owner assigns member", owner, member, true},
		{"admin assigns hr", admin, hr, true},
		{"admin cannot assign owner", admin, owner, false},
		{"hr cannot assign admin", hr, admin, false},
		{"equal rank is never assignable", admin, &model.Role{Name: "Moderator", Position: 40}, false},
		{"a role cannot assign itself", admin, admin, false},
		{"nil acting role", nil, member, false},
		{"nil target role", owner, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.CanAssignRole(tt.acting, tt.target))
		})
	}
}

func TestIsProtectedRole(t *testing.T) {
	tests := []struct {
		name string
		role *model.Role
		want bool
	}{
		{"default owner", &model.Role{Name: model.RoleOwner, IsDefault: true}, true},
		{"default admin", &model.Role{Name: model.RoleAdmin, IsDefault: true}, true},
		{"default member", &model.Role{Name: model.RoleMember, IsDefault: true}, false},
		{"custom role named Owner", &model.Role{Name: model.RoleOwner, IsDefault: false}, false},
		{"custom role", &model.Role{Name: "Recruiter", IsDefault: false}, false},
		{"nil role", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authz.IsProtectedRole(tt.role))
		})
	}
}
