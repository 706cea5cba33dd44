package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
	"github.com/annotatehub/annotation-backend/internal/services"
)

type translationMocks struct {
	projects  *services.MockProjectReader
	sentences *services.MockSentenceReader
	reader    *services.MockTranslationReader
	writer    *services.MockTranslationWriter
}

func newTranslationService(ctrl *gomock.Controller) (*services.TranslationService, translationMocks) {
	m := translationMocks{
		projects:  services.NewMockProjectReader(ctrl),
		sentences: services.NewMockSentenceReader(ctrl),
		reader:    services.NewMockTranslationReader(ctrl),
		writer:    services.NewMockTranslationWriter(ctrl),
	}
	return services.NewTranslationService(m.projects, m.sentences, m.reader, m.writer), m
}

func TestTranslationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := &models.Project{ID: 1}
	annotators := []models.User{{Username: "alice"}}
	sentence := &models.Sentence{ID: 5, ProjectID: 1}

	t.Run("Created", func(t *testing.T) {
		svc, m := newTranslationService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.projects.EXPECT().ListAnnotators(gomock.Any(), 1).Return(annotators, nil)
		m.sentences.EXPECT().GetByProject(gomock.Any(), 1, 5).Return(sentence, nil)
		m.writer.EXPECT().Save(gomock.Any(), 5, "Good morning", "eng", "alice").
			Return(&models.Translation{ID: 2, Text: "Good morning", SrcSentenceID: 5, AnnotatorUsername: "alice"}, nil)

		translation, err := svc.Create(context.Background(), policy.Requester{Username: "alice"}, 1, 5, "Good morning", "eng", "alice")
		assert.NoError(t, err)
		assert.Equal(t, 2, translation.ID)
	})

	t.Run("ProjectNotFound", func(t *testing.T) {
		svc, m := newTranslationService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		translation, err := svc.Create(context.Background(), policy.Requester{Username: "alice"}, 99, 5, "x", "eng", "alice")
		assert.ErrorIs(t, err, services.ErrProjectNotFound)
		assert.Nil(t, translation)
	})

	t.Run("OutsiderDenied", func(t *testing.T) {
		svc, m := newTranslationService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.projects.EXPECT().ListAnnotators(gomock.Any(), 1).Return(annotators, nil)

		translation, err := svc.Create(context.Background(), policy.Requester{Username: "carol"}, 1, 5, "x", "eng", "carol")
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
		assert.Nil(t, translation)
	})

	t.Run("SentenceNotFound", func(t *testing.T) {
		svc, m := newTranslationService(ctrl)

		m.projects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		m.projects.EXPECT().ListAnnotators(gomock.Any(), 1).Return(annotators, nil)
		m.sentences.EXPECT().GetByProject(gomock.Any(), 1, 99).Return(nil, nil)

		translation, err := svc.Create(context.Background(), policy.Requester{Username: "alice"}, 1, 99, "x", "eng", "alice")
		assert.ErrorIs(t, err, services.ErrSentenceNotFound)
		assert.Nil(t, translation)
	})
}

func TestTranslationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sentence := &models.Sentence{ID: 5, ProjectID: 1}

	t.Run("Found", func(t *testing.T) {
		svc, m := newTranslationService(ctrl)

		m.sentences.EXPECT().GetByProject(gomock.Any(), 1, 5).Return(sentence, nil)
		m.reader.EXPECT().GetBySentence(gomock.Any(), 5, 2).
			Return(&models.Translation{ID: 2, SrcSentenceID: 5}, nil)

		translation, err := svc.Get(context.Background(), 1, 5, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, translation.ID)
	})

	t.Run("SentenceNotFound", func(t *testing.T) {
		svc, m := newTranslationService(ctrl)

		m.sentences.EXPECT().GetByProject(gomock.Any(), 1, 99).Return(nil, nil)

		translation, err := svc.Get(context.Background(), 1, 99, 2)
		assert.ErrorIs(t, err, services.ErrSentenceNotFound)
		assert.Nil(t, translation)
	})

	t.Run("TranslationNotFound", func(t *testing.T) {
		svc, m := newTranslationService(ctrl)

		m.sentences.EXPECT().GetByProject(gomock.Any(), 1, 5).Return(sentence, nil)
		m.reader.EXPECT().GetBySentence(gomock.Any(), 5, 99).Return(nil, nil)

		translation, err := svc.Get(context.Background(), 1, 5, 99)
		assert.ErrorIs(t, err, services.ErrTranslationNotFound)
		assert.Nil(t, translation)
	})
}
