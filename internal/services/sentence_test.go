package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
	"github.com/annotatehub/annotation-backend/internal/services"
)

func TestSentenceService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := policy.Requester{Username: "root", IsAdmin: true}
	project := &models.Project{ID: 1, Name: "swahili-asr"}
	inputs := []models.SentenceInput{
		{Text: "first", LanguageISO: "swh"},
		{Text: "second", LanguageISO: "swh"},
	}

	t.Run("CreatedInOrder", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		gomock.InOrder(
			mockWriter.EXPECT().Save(gomock.Any(), 1, "first", "swh").
				Return(&models.Sentence{ID: 10, Text: "first", LanguageISO: "swh", ProjectID: 1}, nil),
			mockWriter.EXPECT().Save(gomock.Any(), 1, "second", "swh").
				Return(&models.Sentence{ID: 11, Text: "second", LanguageISO: "swh", ProjectID: 1}, nil),
		)

		sentences, err := svc.CreateBatch(context.Background(), admin, 1, inputs)
		assert.NoError(t, err)
		assert.Len(t, sentences, 2)
		assert.Equal(t, 10, sentences[0].ID)
		assert.Equal(t, 11, sentences[1].ID)
	})

	t.Run("ProjectResolvedBeforePermission", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		sentences, err := svc.CreateBatch(context.Background(), policy.Requester{Username: "alice"}, 99, inputs)
		assert.ErrorIs(t, err, services.ErrProjectNotFound)
		assert.Nil(t, sentences)
	})

	t.Run("NonAdminDenied", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)

		sentences, err := svc.CreateBatch(context.Background(), policy.Requester{Username: "alice"}, 1, inputs)
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
		assert.Nil(t, sentences)
	})

	t.Run("FailingItemAborts", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		mockWriter.EXPECT().Save(gomock.Any(), 1, "first", "swh").
			Return(nil, errors.New("insert failed"))

		sentences, err := svc.CreateBatch(context.Background(), admin, 1, inputs)
		assert.Error(t, err)
		assert.Nil(t, sentences)
	})
}

func TestSentenceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	project := &models.Project{ID: 1, Name: "swahili-asr"}
	annotators := []models.User{{Username: "alice"}}

	t.Run("AnnotatorCanRead", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		mockProjects.EXPECT().ListAnnotators(gomock.Any(), 1).Return(annotators, nil)
		mockReader.EXPECT().GetByProject(gomock.Any(), 1, 5).
			Return(&models.Sentence{ID: 5, ProjectID: 1}, nil)

		sentence, err := svc.Get(context.Background(), policy.Requester{Username: "alice"}, 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, sentence.ID)
	})

	t.Run("AdminBypassesMembership", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		mockProjects.EXPECT().ListAnnotators(gomock.Any(), 1).Return(annotators, nil)
		mockReader.EXPECT().GetByProject(gomock.Any(), 1, 5).
			Return(&models.Sentence{ID: 5, ProjectID: 1}, nil)

		_, err := svc.Get(context.Background(), policy.Requester{Username: "boss", IsAdmin: true}, 1, 5)
		assert.NoError(t, err)
	})

	t.Run("OutsiderDenied", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		mockProjects.EXPECT().ListAnnotators(gomock.Any(), 1).Return(annotators, nil)

		sentence, err := svc.Get(context.Background(), policy.Requester{Username: "carol"}, 1, 5)
		assert.ErrorIs(t, err, services.ErrPermissionDenied)
		assert.Nil(t, sentence)
	})

	t.Run("SentenceNotFound", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
		mockProjects.EXPECT().ListAnnotators(gomock.Any(), 1).Return(annotators, nil)
		mockReader.EXPECT().GetByProject(gomock.Any(), 1, 99).Return(nil, nil)

		sentence, err := svc.Get(context.Background(), policy.Requester{Username: "alice"}, 1, 99)
		assert.ErrorIs(t, err, services.ErrSentenceNotFound)
		assert.Nil(t, sentence)
	})

	t.Run("ProjectNotFound", func(t *testing.T) {
		mockProjects := services.NewMockProjectReader(ctrl)
		mockReader := services.NewMockSentenceReader(ctrl)
		mockWriter := services.NewMockSentenceWriter(ctrl)
		svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

		mockProjects.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		sentence, err := svc.Get(context.Background(), policy.Requester{Username: "alice"}, 99, 5)
		assert.ErrorIs(t, err, services.ErrProjectNotFound)
		assert.Nil(t, sentence)
	})
}

func TestSentenceService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProjects := services.NewMockProjectReader(ctrl)
	mockReader := services.NewMockSentenceReader(ctrl)
	mockWriter := services.NewMockSentenceWriter(ctrl)
	svc := services.NewSentenceService(mockProjects, mockReader, mockWriter)

	project := &models.Project{ID: 1}
	stored := []models.Sentence{{ID: 1, ProjectID: 1}, {ID: 2, ProjectID: 1}}

	mockProjects.EXPECT().GetByID(gomock.Any(), 1).Return(project, nil)
	mockProjects.EXPECT().ListAnnotators(gomock.Any(), 1).
		Return([]models.User{{Username: "alice"}}, nil)
	mockReader.EXPECT().ListByProject(gomock.Any(), 1, 0, 10).Return(stored, nil)

	sentences, err := svc.List(context.Background(), policy.Requester{Username: "alice"}, 1, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, stored, sentences)
}
