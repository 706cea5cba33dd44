package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
)

type RoleReadRepository struct {
	db *sqlx.DB
}

func NewRoleReadRepository(db *sqlx.DB) *RoleReadRepository {
	return &RoleReadRepository{db: db}
}

func (r *RoleReadRepository) GetByID(ctx context.Context, id int) (*models.Role, error) {
	const query = `SELECT id, username, project_id, role FROM roles WHERE id = $1`

	var role models.Role
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &role, query, id)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{id}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &role, nil
}

// GetByUser returns the membership row for a (project, username) pair.
func (r *RoleReadRepository) GetByUser(ctx context.Context, projectID int, username string) (*models.Role, error) {
	const query = `SELECT id, username, project_id, role FROM roles WHERE project_id = $1 AND username = $2`
	args := []any{projectID, username}

	var role models.Role
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &role, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &role, nil
}

func (r *RoleReadRepository) ListByProject(ctx context.Context, projectID, skip, limit int) ([]models.Role, error) {
	const query = `
		SELECT id, username, project_id, role
		FROM roles
		WHERE project_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`
	args := []any{projectID, skip, limit}

	roles := []models.Role{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &roles, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return roles, nil
}

type RoleWriteRepository struct {
	db *sqlx.DB
}

func NewRoleWriteRepository(db *sqlx.DB) *RoleWriteRepository {
	return &RoleWriteRepository{db: db}
}

func (r *RoleWriteRepository) Save(ctx context.Context, projectID int, username, role string) (*models.Role, error) {
	const query = `
		INSERT INTO roles (username, project_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, username, project_id, role
	`
	args := []any{username, projectID, role}

	var saved models.Role
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &saved, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

func (r *RoleWriteRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM roles WHERE id = $1`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, id)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{id}, "error", err)

	return err
}
