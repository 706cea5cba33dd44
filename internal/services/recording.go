package services

import (
	"context"
	"errors"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
)

// ErrRecordingNotFound is returned when no recording with the given id
// belongs to the addressed sentence.
var ErrRecordingNotFound = errors.New("recording not found for sentence")

// RecordingReader defines read-only operations for recordings.
type RecordingReader interface {
	GetBySentence(ctx context.Context, sentenceID, recordingID int) (*models.Recording, error)
}

// RecordingWriter defines write operations for recordings.
type RecordingWriter interface {
	Save(ctx context.Context, sentenceID int, audioFilePath, languageISO, annotatorUsername string) (*models.Recording, error)
}

// RecordingService mirrors TranslationService for audio recordings.
type RecordingService struct {
	projects  ProjectReader
	sentences SentenceReader
	reader    RecordingReader
	writer    RecordingWriter
}

// NewRecordingService creates a new RecordingService instance.
func NewRecordingService(projects ProjectReader, sentences SentenceReader, reader RecordingReader, writer RecordingWriter) *RecordingService {
	return &RecordingService{
		projects:  projects,
		sentences: sentences,
		reader:    reader,
		writer:    writer,
	}
}

// Create stores a recording for a sentence under the same access rule as
// translation creation.
func (svc *RecordingService) Create(ctx context.Context, req policy.Requester, projectID, sentenceID int, audioFilePath, languageISO, annotatorUsername string) (*models.Recording, error) {
	project, err := svc.projects.GetByID(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "err", err)
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	annotators, err := svc.projects.ListAnnotators(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list annotators", "err", err)
		return nil, err
	}
	if !policy.CanAccessSentences(req, usernames(annotators)) {
		return nil, ErrPermissionDenied
	}

	sentence, err := svc.sentences.GetByProject(ctx, projectID, sentenceID)
	if err != nil {
		logger.Log.Errorw("failed to get sentence", "err", err)
		return nil, err
	}
	if sentence == nil {
		return nil, ErrSentenceNotFound
	}

	recording, err := svc.writer.Save(ctx, sentenceID, audioFilePath, languageISO, annotatorUsername)
	if err != nil {
		logger.Log.Errorw("failed to save recording", "err", err)
		return nil, err
	}

	return recording, nil
}

// Get returns one recording of a sentence, resolving only the
// (project, sentence) pair, as the translation read does.
func (svc *RecordingService) Get(ctx context.Context, projectID, sentenceID, recordingID int) (*models.Recording, error) {
	sentence, err := svc.sentences.GetByProject(ctx, projectID, sentenceID)
	if err != nil {
		logger.Log.Errorw("failed to get sentence", "err", err)
		return nil, err
	}
	if sentence == nil {
		return nil, ErrSentenceNotFound
	}

	recording, err := svc.reader.GetBySentence(ctx, sentenceID, recordingID)
	if err != nil {
		logger.Log.Errorw("failed to get recording", "err", err)
		return nil, err
	}
	if recording == nil {
		return nil, ErrRecordingNotFound
	}

	return recording, nil
}
