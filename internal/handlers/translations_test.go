package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/services"
)

func TestCreateTranslationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTranslationServicer(ctrl)

	r := chi.NewRouter()
	r.Post("/projects/{project_id}/sentences/{sentence_id}/translations/", NewCreateTranslationHandler(mockSvc))

	input := CreateTranslationRequest{
		Text:              "Good morning",
		LanguageISO:       "eng",
		AnnotatorUsername: "alice",
	}

	t.Run("created", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any(), 1, 5, "Good morning", "eng", "alice").
			Return(&models.Translation{ID: 2, Text: "Good morning", SrcSentenceID: 5, AnnotatorUsername: "alice"}, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest(http.MethodPost, "/projects/1/sentences/5/translations/", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.Translation
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, 2, got.ID)
	})

	t.Run("sentence not found", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any(), 1, 99, "Good morning", "eng", "alice").
			Return(nil, services.ErrSentenceNotFound)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest(http.MethodPost, "/projects/1/sentences/99/translations/", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"No such sentence found in this project."}`, rr.Body.String())
	})

	t.Run("permission denied", func(t *testing.T) {
		mockSvc.EXPECT().
			Create(gomock.Any(), gomock.Any(), 1, 5, "Good morning", "eng", "alice").
			Return(nil, services.ErrPermissionDenied)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest(http.MethodPost, "/projects/1/sentences/5/translations/", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestGetTranslationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTranslationServicer(ctrl)

	r := chi.NewRouter()
	r.Get("/projects/{project_id}/sentences/{sentence_id}/translations/{translation_id}", NewGetTranslationHandler(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), 1, 5, 2).
			Return(&models.Translation{ID: 2, SrcSentenceID: 5}, nil)

		req := httptest.NewRequest(http.MethodGet, "/projects/1/sentences/5/translations/2", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("translation not found", func(t *testing.T) {
		mockSvc.EXPECT().Get(gomock.Any(), 1, 5, 99).
			Return(nil, services.ErrTranslationNotFound)

		req := httptest.NewRequest(http.MethodGet, "/projects/1/sentences/5/translations/99", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"No such translation for this sentence."}`, rr.Body.String())
	})
}
