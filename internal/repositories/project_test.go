package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProjectReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectReadRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "name", "p_type"}).
			AddRow(1, "swahili-asr", "speech")
		mock.ExpectQuery("SELECT id, name, p_type FROM projects WHERE id").
			WithArgs(1).
			WillReturnRows(rows)

		project, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, project)
		assert.Equal(t, "swahili-asr", project.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, p_type FROM projects WHERE id").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "p_type"}))

		project, err := repo.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, project)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectReadRepository_GetByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectReadRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "p_type"}).
		AddRow(2, "luo-translation", "text")
	mock.ExpectQuery("SELECT id, name, p_type FROM projects WHERE name").
		WithArgs("luo-translation").
		WillReturnRows(rows)

	project, err := repo.GetByName(ctx, "luo-translation")
	assert.NoError(t, err)
	assert.NotNil(t, project)
	assert.Equal(t, 2, project.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectReadRepository_ListAnnotators(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectReadRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows(userColumns()).
		AddRow("alice", "alice@example.com", "hash1", nil, nil, true).
		AddRow("bob", "bob@example.com", "hash2", nil, nil, false)
	mock.ExpectQuery("SELECT u.username, u.email").
		WithArgs(1).
		WillReturnRows(rows)

	users, err := repo.ListAnnotators(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectWriteRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name", "p_type"}).
		AddRow(7, "swahili-asr", "speech")
	mock.ExpectQuery("INSERT INTO projects").
		WithArgs("swahili-asr", "speech").
		WillReturnRows(rows)

	project, err := repo.Save(ctx, "swahili-asr", "speech")
	assert.NoError(t, err)
	assert.NotNil(t, project)
	assert.Equal(t, 7, project.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProjectWriteRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM projects").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(ctx, 7)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
