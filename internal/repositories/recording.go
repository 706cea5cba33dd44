package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
)

type RecordingReadRepository struct {
	db *sqlx.DB
}

func NewRecordingReadRepository(db *sqlx.DB) *RecordingReadRepository {
	return &RecordingReadRepository{db: db}
}

func (r *RecordingReadRepository) GetBySentence(ctx context.Context, sentenceID, recordingID int) (*models.Recording, error) {
	const query = `
		SELECT id, audio_file_path, language_iso, src_sentence_id, annotator_username
		FROM recordings
		WHERE src_sentence_id = $1 AND id = $2
	`
	args := []any{sentenceID, recordingID}

	var recording models.Recording
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &recording, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &recording, nil
}

type RecordingWriteRepository struct {
	db *sqlx.DB
}

func NewRecordingWriteRepository(db *sqlx.DB) *RecordingWriteRepository {
	return &RecordingWriteRepository{db: db}
}

func (r *RecordingWriteRepository) Save(ctx context.Context, sentenceID int, audioFilePath, languageISO, annotatorUsername string) (*models.Recording, error) {
	const query = `
		INSERT INTO recordings (audio_file_path, language_iso, src_sentence_id, annotator_username)
		VALUES ($1, $2, $3, $4)
		RETURNING id, audio_file_path, language_iso, src_sentence_id, annotator_username
	`
	args := []any{audioFilePath, languageISO, sentenceID, annotatorUsername}

	var recording models.Recording
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &recording, query, args...)

	logger.Log.Infow("query", "sql", squash(query), "args", args, "error", err)

	if err != nil {
		return nil, err
	}

	return &recording, nil
}
