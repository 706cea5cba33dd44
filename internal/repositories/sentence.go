package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
)

type SentenceReadRepository struct {
	db *sqlx.DB
}

func NewSentenceReadRepository(db *sqlx.DB) *SentenceReadRepository {
	return &SentenceReadRepository{db: db}
}

// GetByProject returns the sentence only when it belongs to the given project.
func (r *SentenceReadRepository) GetByProject(ctx context.Context, projectID, sentenceID int) (*models.Sentence, error) {
	const query = `
		SELECT id, text, language_iso, project_id
		FROM sentences
		WHERE project_id = $1 AND id = $2
	`
	args := []any{projectID, sentenceID}

	var sentence models.Sentence
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &sentence, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sentence, nil
}

func (r *SentenceReadRepository) ListByProject(ctx context.Context, projectID, skip, limit int) ([]models.Sentence, error) {
	const query = `
		SELECT id, text, language_iso, project_id
		FROM sentences
		WHERE project_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`
	args := []any{projectID, skip, limit}

	sentences := []models.Sentence{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &sentences, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return sentences, nil
}

type SentenceWriteRepository struct {
	db *sqlx.DB
}

func NewSentenceWriteRepository(db *sqlx.DB) *SentenceWriteRepository {
	return &SentenceWriteRepository{db: db}
}

func (r *SentenceWriteRepository) Save(ctx context.Context, projectID int, text, languageISO string) (*models.Sentence, error) {
	const query = `
		INSERT INTO sentences (text, language_iso, project_id)
		VALUES ($1, $2, $3)
		RETURNING id, text, language_iso, project_id
	`
	args := []any{text, languageISO, projectID}

	var sentence models.Sentence
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &sentence, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return &sentence, nil
}
