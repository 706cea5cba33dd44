package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
)

type ProjectReadRepository struct {
	db *sqlx.DB
}

func NewProjectReadRepository(db *sqlx.DB) *ProjectReadRepository {
	return &ProjectReadRepository{db: db}
}

func (r *ProjectReadRepository) GetByID(ctx context.Context, id int) (*models.Project, error) {
	const query = `SELECT id, name, p_type FROM projects WHERE id = $1`

	var project models.Project
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &project, query, id)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectReadRepository) GetByName(ctx context.Context, name string) (*models.Project, error) {
	const query = `SELECT id, name, p_type FROM projects WHERE name = $1`

	var project models.Project
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &project, query, name)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{name}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectReadRepository) List(ctx context.Context, skip, limit int) ([]models.Project, error) {
	const query = `SELECT id, name, p_type FROM projects ORDER BY id OFFSET $1 LIMIT $2`

	projects := []models.Project{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &projects, query, skip, limit)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{skip, limit}, "error", err)

	if err != nil {
		return nil, err
	}

	return projects, nil
}

// ListAnnotators returns the users holding a role in the project.
func (r *ProjectReadRepository) ListAnnotators(ctx context.Context, projectID int) ([]models.User, error) {
	const query = `
		SELECT u.username, u.email, u.hashed_password, u.gender, u.age, u.is_admin
		FROM users u
		JOIN roles r ON r.username = u.username
		WHERE r.project_id = $1
		ORDER BY r.id
	`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &users, query, projectID)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{projectID}, "error", err)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type ProjectWriteRepository struct {
	db *sqlx.DB
}

func NewProjectWriteRepository(db *sqlx.DB) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db}
}

func (r *ProjectWriteRepository) Save(ctx context.Context, name, pType string) (*models.Project, error) {
	const query = `
		INSERT INTO projects (name, p_type)
		VALUES ($1, $2)
		RETURNING id, name, p_type
	`
	args := []any{name, pType}

	var project models.Project
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &project, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectWriteRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM projects WHERE id = $1`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{id}, "error", err)

	return err
}
