package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
	"github.com/annotatehub/annotation-backend/internal/services"
)

type roleMocks struct {
	projects *services.MockProjectReader
	users    *services.MockUserReader
	reader   *services.MockRoleReader
	writer   *services.MockRoleWriter
}

func newRoleService(ctrl *gomock.Controller) (*services.RoleService, roleMocks) {
	m := roleMocks{
		projects: services.NewMockProjectReader(ctrl),
		users:    services.NewMockUserReader(ctrl),
		reader:   services.NewMockRoleReader(ctrl),
		writer:   services.NewMockRoleWriter(ctrl),
	}
	return services.NewRoleService(m.projects, m.users, m.reader, m.writer), m
}

func TestRoleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := policy.Requester{Username: "root", IsAdmin: true}
	project := &models.Project{ID: 1}

	t.Run("Created", func(t *testing.T) {
		svc, m := newRoleService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.users.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.User{Username: "alice"}, nil)
		m.reader.EXPECT().GetByUser(gomock.Any(), 1, "alice").Return(nil, nil)
		m.writer.EXPECT().Save(gomock.Any(), 1, "alice", "annotator").
			Return(&models.Role{ID: 4, Username: "alice", ProjectID: 1, Role: "annotator"}, nil)

		role, err := svc.Create(context.Background(), admin, 1, "alice", "annotator")
		assert.NoError(t, err)
		assert.Equal(t, 4, role.ID)
	})

	t.Run("ProjectResolvedBeforePermission", func(t *testing.T) {
		svc, m := newRoleService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		role, err := svc.Create(context.Background(), policy.Requester{Username: "alice"}, 99, "alice", "annotator")
		assert.ErrorIs(t, err, services.ErrProjectNotFound)
		assert.Nil(t, role)
	})

	t.Run("NonAdminDenied", func(t *testing.T) {
		svc, m := newRoleService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)

		role, err := svc.Create(context.Background(), policy.Requester{Username: "alice"}, 1, "alice", "annotator")
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
		assert.Nil(t, role)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		svc, m := newRoleService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

		role, err := svc.Create(context.Background(), admin, 1, "ghost", "annotator")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
		assert.Nil(t, role)
	})

	t.Run("RoleTaken", func(t *testing.T) {
		svc, m := newRoleService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.users.EXPECT().GetByUsername(gomock.Any(), "alice").
			Return(&models.User{Username: "alice"}, nil)
		m.reader.EXPECT().GetByUser(gomock.Any(), 1, "alice").
			Return(&models.Role{ID: 4, Username: "alice", ProjectID: 1}, nil)

		role, err := svc.Create(context.Background(), admin, 1, "alice", "annotator")
		assert.ErrorIs(t, err, services.ErrRoleTaken)
		assert.Nil(t, role)
	})
}

func TestRoleService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRoleService(ctrl)

	stored := []models.Role{{ID: 1, Username: "alice"}, {ID: 2, Username: "bob"}}
	m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(&models.Project{ID: 1}, nil)
	m.reader.EXPECT().ListByProject(gomock.Any(), 1, 0, 10).Return(stored, nil)

	roles, err := svc.List(context.Background(), policy.Requester{Username: "root", IsAdmin: true}, 1, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, stored, roles)
}

func TestRoleService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := policy.Requester{Username: "root", IsAdmin: true}
	project := &models.Project{ID: 1}

	t.Run("Deleted", func(t *testing.T) {
		svc, m := newRoleService(ctrl)

		stored := &models.Role{ID: 4, Username: "alice", ProjectID: 1}
		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), 4).Return(stored, nil)
		m.writer.EXPECT().Delete(gomock.Any(), 4).Return(nil)

		role, err := svc.Delete(context.Background(), admin, 1, 4)
		assert.NoError(t, err)
		assert.Equal(t, stored, role)
	})

	t.Run("WrongProject", func(t *testing.T) {
		// A role belonging to another project reads as not found
		svc, m := newRoleService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), 4).
			Return(&models.Role{ID: 4, Username: "alice", ProjectID: 2}, nil)

		role, err := svc.Delete(context.Background(), admin, 1, 4)
		assert.ErrorIs(t, err, services.ErrRoleNotFound)
		assert.Nil(t, role)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, m := newRoleService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.reader.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		role, err := svc.Delete(context.Background(), admin, 1, 99)
		assert.ErrorIs(t, err, services.ErrRoleNotFound)
		assert.Nil(t, role)
	})
}
