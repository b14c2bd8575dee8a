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

func TestChangeMemberRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	companyID := uuid.New()
	actingUserID := uuid.New()
	targetUserID := uuid.New()

	ownerRole := &model.Role{ID: uuid.New(), CompanyID: companyID, Name: model.RoleOwner, Position: 50, IsDefault: true}
	adminRole := &model.Role{ID: uuid.New(), CompanyID: companyID, Name: model.RoleAdmin, Position: 40, IsDefault: true}
	hrRole := &model.Role{ID: uuid.New(), CompanyID: companyID, Name: model.RoleHR, Position: 30, IsDefault: true}
	memberRole := &model.Role{ID: uuid.New(), CompanyID: companyID, Name: model.RoleMember, Position: 10, IsDefault: true}

	targetMember := func(roleID uuid.UUID) *model.CompanyMember {
		return &model.CompanyMember{
			ID:        uuid.New(),
			CompanyID: companyID,
			UserID:    targetUserID,
			RoleID:    roleID,
		}
	}

	t.Run("promotes a member with change_user_roles", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := targetMember(memberRole.ID)

		roleRepo.EXPECT().FindByID(gomock.Any(), hrRole.ID).Return(hrRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(true, nil)
		memberRepo.EXPECT().UpdateRole(gomock.Any(), member.ID, hrRole.ID).Return(nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		roleName, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, targetUserID, hrRole.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleHR, roleName)
	})

	t.Run("rejects a role from another company", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		foreignRole := &model.Role{ID: uuid.New(), CompanyID: uuid.New(), Name: "Recruiter", Position: 20}
		roleRepo.EXPECT().FindByID(gomock.Any(), foreignRole.ID).Return(foreignRole, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		_, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, targetUserID, foreignRole.ID)

		assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	})

	t.Run("rejects self-change without manage_all_users", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		self := &model.CompanyMember{
			ID:        uuid.New(),
			CompanyID: companyID,
			UserID:    actingUserID,
			RoleID:    adminRole.ID,
		}

		roleRepo.EXPECT().FindByID(gomock.Any(), ownerRole.ID).Return(ownerRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, actingUserID).Return(self, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), adminRole.ID).Return(adminRole, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermManageAllUsers).
			Return(false, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		_, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, actingUserID, ownerRole.ID)

		assert.ErrorIs(t, err, domain.ErrCannotChangeOwnRole)
	})

	t.Run("allows self-change with manage_all_users", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		self := &model.CompanyMember{
			ID:        uuid.New(),
			CompanyID: companyID,
			UserID:    actingUserID,
			RoleID:    ownerRole.ID,
		}

		roleRepo.EXPECT().FindByID(gomock.Any(), adminRole.ID).Return(adminRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, actingUserID).Return(self, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), ownerRole.ID).Return(ownerRole, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermManageAllUsers).
			Return(true, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(true, nil)
		memberRepo.EXPECT().CountByRole(gomock.Any(), ownerRole.ID).Return(int64(2), nil)
		memberRepo.EXPECT().UpdateRole(gomock.Any(), self.ID, adminRole.ID).Return(nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		roleName, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, actingUserID, adminRole.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, roleName)
	})

	t.Run("refuses to demote the sole owner", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		self := &model.CompanyMember{
			ID:        uuid.New(),
			CompanyID: companyID,
			UserID:    actingUserID,
			RoleID:    ownerRole.ID,
		}

		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, actingUserID).Return(self, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), ownerRole.ID).Return(ownerRole, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermManageAllUsers).
			Return(true, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(true, nil)
		memberRepo.EXPECT().CountByRole(gomock.Any(), ownerRole.ID).Return(int64(1), nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		_, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, actingUserID, memberRole.ID)

		assert.ErrorIs(t, err, domain.ErrLastOwner)
	})

	t.Run("restricted changer cannot promote into admin", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := targetMember(memberRole.ID)

		roleRepo.EXPECT().FindByID(gomock.Any(), adminRole.ID).Return(adminRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(false, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeRegularUserRoles).
			Return(true, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		_, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, targetUserID, adminRole.ID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("restricted changer cannot demote an owner", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := targetMember(ownerRole.ID)

		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(false, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeRegularUserRoles).
			Return(true, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), ownerRole.ID).Return(ownerRole, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		_, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, targetUserID, memberRole.ID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("restricted changer moves member between regular roles", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := targetMember(memberRole.ID)

		roleRepo.EXPECT().FindByID(gomock.Any(), hrRole.ID).Return(hrRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(false, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeRegularUserRoles).
			Return(true, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		memberRepo.EXPECT().UpdateRole(gomock.Any(), member.ID, hrRole.ID).Return(nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		roleName, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, targetUserID, hrRole.ID)

		assert.NoError(t, err)
		assert.Equal(t, model.RoleHR, roleName)
	})

	t.Run("rejects callers with neither permission", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := targetMember(memberRole.ID)

		roleRepo.EXPECT().FindByID(gomock.Any(), hrRole.ID).Return(hrRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(false, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeRegularUserRoles).
			Return(false, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		_, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, targetUserID, hrRole.ID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("mirrors the change into the relationship backend", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)
		syncer := mocks.NewMockRelationshipSyncer(ctrl)

		member := targetMember(memberRole.ID)

		roleRepo.EXPECT().FindByID(gomock.Any(), hrRole.ID).Return(hrRole, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermChangeUserRoles).
			Return(true, nil)
		memberRepo.EXPECT().UpdateRole(gomock.Any(), member.ID, hrRole.ID).Return(nil)
		syncer.EXPECT().DeleteMembership(gomock.Any(), companyID, targetUserID, "member").Return(nil)
		syncer.EXPECT().WriteMembership(gomock.Any(), companyID, targetUserID, "hr").Return(nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		svc.SetRelationshipSyncer(syncer)
		_, err := svc.ChangeMemberRole(ctx, actingUserID, companyID, targetUserID, hrRole.ID)

		assert.NoError(t, err)
	})
}

func TestRemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	companyID := uuid.New()
	actingUserID := uuid.New()
	targetUserID := uuid.New()

	ownerRole := &model.Role{ID: uuid.New(), CompanyID: companyID, Name: model.RoleOwner, Position: 50, IsDefault: true}
	memberRole := &model.Role{ID: uuid.New(), CompanyID: companyID, Name: model.RoleMember, Position: 10, IsDefault: true}

	t.Run("removes a regular member", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := &model.CompanyMember{ID: uuid.New(), CompanyID: companyID, UserID: targetUserID, RoleID: memberRole.ID}

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermRemoveMembers).
			Return(true, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		memberRepo.EXPECT().Delete(gomock.Any(), member.ID).Return(nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		assert.NoError(t, svc.RemoveMember(ctx, companyID, targetUserID, actingUserID))
	})

	t.Run("refuses to remove the sole owner", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := &model.CompanyMember{ID: uuid.New(), CompanyID: companyID, UserID: targetUserID, RoleID: ownerRole.ID}

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermRemoveMembers).
			Return(true, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), ownerRole.ID).Return(ownerRole, nil)
		memberRepo.EXPECT().CountByRole(gomock.Any(), ownerRole.ID).Return(int64(1), nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		err := svc.RemoveMember(ctx, companyID, targetUserID, actingUserID)

		assert.ErrorIs(t, err, domain.ErrLastOwner)
	})

	t.Run("removes an owner when another remains", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		member := &model.CompanyMember{ID: uuid.New(), CompanyID: companyID, UserID: targetUserID, RoleID: ownerRole.ID}

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermRemoveMembers).
			Return(true, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), ownerRole.ID).Return(ownerRole, nil)
		memberRepo.EXPECT().CountByRole(gomock.Any(), ownerRole.ID).Return(int64(2), nil)
		memberRepo.EXPECT().Delete(gomock.Any(), member.ID).Return(nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		assert.NoError(t, svc.RemoveMember(ctx, companyID, targetUserID, actingUserID))
	})

	t.Run("mirrors the removal into the relationship backend", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)
		syncer := mocks.NewMockRelationshipSyncer(ctrl)

		member := &model.CompanyMember{ID: uuid.New(), CompanyID: companyID, UserID: targetUserID, RoleID: memberRole.ID}

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermRemoveMembers).
			Return(true, nil)
		memberRepo.EXPECT().FindByCompanyAndUser(gomock.Any(), companyID, targetUserID).Return(member, nil)
		roleRepo.EXPECT().FindByID(gomock.Any(), memberRole.ID).Return(memberRole, nil)
		memberRepo.EXPECT().Delete(gomock.Any(), member.ID).Return(nil)
		syncer.EXPECT().DeleteMembership(gomock.Any(), companyID, targetUserID, "member").Return(nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		svc.SetRelationshipSyncer(syncer)
		assert.NoError(t, svc.RemoveMember(ctx, companyID, targetUserID, actingUserID))
	})

	t.Run("rejects callers without remove_members", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermRemoveMembers).
			Return(false, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		err := svc.RemoveMember(ctx, companyID, targetUserID, actingUserID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestListMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	companyID := uuid.New()
	actingUserID := uuid.New()

	t.Run("rejects callers without view_members", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermViewMembers).
			Return(false, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		_, err := svc.ListMembers(ctx, companyID, actingUserID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("returns the member list", func(t *testing.T) {
		memberRepo := mocks.NewMockMemberRepositoryIface(ctrl)
		roleRepo := mocks.NewMockRoleRepositoryIface(ctrl)
		checker := mocks.NewMockPermissionSource(ctrl)

		members := []*model.CompanyMember{
			{ID: uuid.New(), CompanyID: companyID, UserID: uuid.New()},
			{ID: uuid.New(), CompanyID: companyID, UserID: actingUserID},
		}

		checker.EXPECT().
			Check(gomock.Any(), actingUserID, companyID, model.PermViewMembers).
			Return(true, nil)
		memberRepo.EXPECT().FindByCompany(gomock.Any(), companyID).Return(members, nil)

		svc := service.NewMemberService(memberRepo, roleRepo, checker)
		got, err := svc.ListMembers(ctx, companyID, actingUserID)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})
}
