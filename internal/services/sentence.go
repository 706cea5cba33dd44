package services

import (
	"context"
	"errors"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
)

// ErrSentenceNotFound is returned when no sentence with the given id belongs
// to the addressed project.
var ErrSentenceNotFound = errors.New("sentence not found in project")

// SentenceReader defines read-only operations for sentences.
type SentenceReader interface {
	GetByProject(ctx context.Context, projectID, sentenceID int) (*models.Sentence, error)
	ListByProject(ctx context.Context, projectID, skip, limit int) ([]models.Sentence, error)
}

// SentenceWriter defines write operations for sentences.
type SentenceWriter interface {
	Save(ctx context.Context, projectID int, text, languageISO string) (*models.Sentence, error)
}

// SentenceService handles sentence creation and lookup under a project.
type SentenceService struct {
	projects ProjectReader
	reader   SentenceReader
	writer   SentenceWriter
}

// NewSentenceService creates a new SentenceService instance.
func NewSentenceService(projects ProjectReader, reader SentenceReader, writer SentenceWriter) *SentenceService {
	return &SentenceService{
		projects: projects,
		reader:   reader,
		writer:   writer,
	}
}

// CreateBatch stores the given sentences under the project, in input order,
// and returns them with their generated ids. The project is resolved before
// the admin check. The caller is expected to run the batch inside one
// transaction so a failing item leaves nothing behind.
func (svc *SentenceService) CreateBatch(ctx context.Context, req policy.Requester, projectID int, inputs []models.SentenceInput) ([]models.Sentence, error) {
	project, err := svc.projects.GetByID(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "err", err)
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if !policy.CanManageProjects(req) {
		return nil, ErrPermissionDenied
	}

	created := make([]models.Sentence, 0, len(inputs))
	for _, in := range inputs {
		sentence, err := svc.writer.Save(ctx, projectID, in.Text, in.LanguageISO)
		if err != nil {
			logger.Log.Errorw("failed to save sentence", "err", err)
			return nil, err
		}
		created = append(created, *sentence)
	}

	return created, nil
}

// Get returns one sentence scoped to the project. The project must resolve,
// then the requester must be an admin or an annotator of the project.
func (svc *SentenceService) Get(ctx context.Context, req policy.Requester, projectID, sentenceID int) (*models.Sentence, error) {
	if err := svc.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	sentence, err := svc.reader.GetByProject(ctx, projectID, sentenceID)
	if err != nil {
		logger.Log.Errorw("failed to get sentence", "err", err)
		return nil, err
	}
	if sentence == nil {
		return nil, ErrSentenceNotFound
	}

	return sentence, nil
}

// List returns a page of the project's sentences, under the same access rule
// as Get.
func (svc *SentenceService) List(ctx context.Context, req policy.Requester, projectID, skip, limit int) ([]models.Sentence, error) {
	if err := svc.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	sentences, err := svc.reader.ListByProject(ctx, projectID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list sentences", "err", err)
		return nil, err
	}

	return sentences, nil
}

// authorize resolves the project and applies the admin-or-annotator rule.
func (svc *SentenceService) authorize(ctx context.Context, req policy.Requester, projectID int) error {
	project, err := svc.projects.GetByID(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "err", err)
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}

	annotators, err := svc.projects.ListAnnotators(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list annotators", "err", err)
		return err
	}

	if !policy.CanAccessSentences(req, usernames(annotators)) {
		return ErrPermissionDenied
	}

	return nil
}
