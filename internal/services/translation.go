package services

import (
	"context"
	"errors"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
)

// ErrTranslationNotFound is returned when no translation with the given id
// belongs to the addressed sentence.
var ErrTranslationNotFound = errors.New("translation not found for sentence")

// TranslationReader defines read-only operations for translations.
type TranslationReader interface {
	GetBySentence(ctx context.Context, sentenceID, translationID int) (*models.Translation, error)
}

// TranslationWriter defines write operations for translations.
type TranslationWriter interface {
	Save(ctx context.Context, sentenceID int, text, languageISO, annotatorUsername string) (*models.Translation, error)
}

// TranslationService handles translation creation and lookup under a
// project-scoped sentence.
type TranslationService struct {
	projects  ProjectReader
	sentences SentenceReader
	reader    TranslationReader
	writer    TranslationWriter
}

// NewTranslationService creates a new TranslationService instance.
func NewTranslationService(projects ProjectReader, sentences SentenceReader, reader TranslationReader, writer TranslationWriter) *TranslationService {
	return &TranslationService{
		projects:  projects,
		sentences: sentences,
		reader:    reader,
		writer:    writer,
	}
}

// Create stores a translation for a sentence. The project must resolve, the
// requester must be an admin or an annotator, and the (project, sentence)
// pair must resolve.
func (svc *TranslationService) Create(ctx context.Context, req policy.Requester, projectID, sentenceID int, text, languageISO, annotatorUsername string) (*models.Translation, error) {
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

	translation, err := svc.writer.Save(ctx, sentenceID, text, languageISO, annotatorUsername)
	if err != nil {
		logger.Log.Errorw("failed to save translation", "err", err)
		return nil, err
	}

	return translation, nil
}

// Get returns one translation of a sentence. Only the (project, sentence)
// pair is resolved; this route carries no membership rule.
func (svc *TranslationService) Get(ctx context.Context, projectID, sentenceID, translationID int) (*models.Translation, error) {
	sentence, err := svc.sentences.GetByProject(ctx, projectID, sentenceID)
	if err != nil {
		logger.Log.Errorw("failed to get sentence", "err", err)
		return nil, err
	}
	if sentence == nil {
		return nil, ErrSentenceNotFound
	}

	translation, err := svc.reader.GetBySentence(ctx, sentenceID, translationID)
	if err != nil {
		logger.Log.Errorw("failed to get translation", "err", err)
		return nil, err
	}
	if translation == nil {
		return nil, ErrTranslationNotFound
	}

	return translation, nil
}
