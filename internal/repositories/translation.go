package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
)

type TranslationReadRepository struct {
	db *sqlx.DB
}

func NewTranslationReadRepository(db *sqlx.DB) *TranslationReadRepository {
	return &TranslationReadRepository{db: db}
}

// GetBySentence returns the translation only when it belongs to the given
// source sentence.
func (r *TranslationReadRepository) GetBySentence(ctx context.Context, sentenceID, translationID int) (*models.Translation, error) {
	const query = `
		SELECT id, text, language_iso, src_sentence_id, annotator_username
		FROM translations
		WHERE src_sentence_id = $1 AND id = $2
	`
	args := []any{sentenceID, translationID}

	var translation models.Translation
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &translation, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &translation, nil
}

type TranslationWriteRepository struct {
	db *sqlx.DB
}

func NewTranslationWriteRepository(db *sqlx.DB) *TranslationWriteRepository {
	return &TranslationWriteRepository{db: db}
}

func (r *TranslationWriteRepository) Save(ctx context.Context, sentenceID int, text, languageISO, annotatorUsername string) (*models.Translation, error) {
	const query = `
		INSERT INTO translations (text, language_iso, src_sentence_id, annotator_username)
		VALUES ($1, $2, $3, $4)
		RETURNING id, text, language_iso, src_sentence_id, annotator_username
	`
	args := []any{text, languageISO, sentenceID, annotatorUsername}

	var translation models.Translation
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &translation, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return &translation, nil
}
