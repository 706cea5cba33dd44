package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT username, email, hashed_password, gender, age, is_admin
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, username)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{username}, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	const query = `
		SELECT username, email, hashed_password, gender, age, is_admin
		FROM users
		ORDER BY username
		OFFSET $1 LIMIT $2
	`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &users, query, skip, limit)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{skip, limit}, "error", err)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) Save(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (username, email, hashed_password, gender, age, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{user.Username, user.Email, user.HashedPassword, user.Gender, user.Age, user.IsAdmin}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	return err
}

// Update applies a partial update: nil patch fields keep the stored value.
func (r *UserWriteRepository) Update(ctx context.Context, username string, patch models.UserPatch) (*models.User, error) {
	const query = `
		UPDATE users
		SET email           = COALESCE($2, email),
		    hashed_password = COALESCE($3, hashed_password),
		    gender          = COALESCE($4, gender),
		    age             = COALESCE($5, age),
		    is_admin        = COALESCE($6, is_admin)
		WHERE username = $1
		RETURNING username, email, hashed_password, gender, age, is_admin
	`
	args := []any{username, patch.Email, patch.HashedPassword, patch.Gender, patch.Age, patch.IsAdmin}

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserWriteRepository) Delete(ctx context.Context, username string) error {
	const query = `DELETE FROM users WHERE username = $1`

	_, err := executor(ctx, r.db).ExecContext(ctx, query, username)

	logger.Log.Infow("query", "sql", squash(query), "args", []any{username}, "error", err)

	return err
}
