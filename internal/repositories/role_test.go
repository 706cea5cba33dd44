package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func roleColumns() []string {
	return []string{"id", "username", "project_id", "role"}
}

func TestRoleReadRepository_GetByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleReadRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(roleColumns()).
			AddRow(3, "alice", 1, "annotator")
		mock.ExpectQuery("SELECT id, username, project_id, role FROM roles WHERE project_id").
			WithArgs(1, "alice").
			WillReturnRows(rows)

		role, err := repo.GetByUser(ctx, 1, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, role)
		assert.Equal(t, "annotator", role.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, project_id, role FROM roles WHERE project_id").
			WithArgs(1, "ghost").
			WillReturnRows(sqlmock.NewRows(roleColumns()))

		role, err := repo.GetByUser(ctx, 1, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, role)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleReadRepository_ListByProject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleReadRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(roleColumns()).
		AddRow(1, "alice", 1, "annotator").
		AddRow(2, "bob", 1, "reviewer")
	mock.ExpectQuery("SELECT id, username, project_id, role").
		WithArgs(1, 0, 10).
		WillReturnRows(rows)

	roles, err := repo.ListByProject(ctx, 1, 0, 10)
	assert.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.Equal(t, "bob", roles[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleWriteRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(roleColumns()).
		AddRow(4, "alice", 1, "annotator")
	mock.ExpectQuery("INSERT INTO roles").
		WithArgs("alice", 1, "annotator").
		WillReturnRows(rows)

	role, err := repo.Save(ctx, 1, "alice", "annotator")
	assert.NoError(t, err)
	assert.NotNil(t, role)
	assert.Equal(t, 4, role.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRoleWriteRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM roles").
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(ctx, 4)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
