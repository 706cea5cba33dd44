package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
	"github.com/annotatehub/annotation-backend/internal/services"
)

// TranslationServicer defines the interface of the translation service.
type TranslationServicer interface {
	Create(ctx context.Context, req policy.Requester, projectID, sentenceID int, text, languageISO, annotatorUsername string) (*models.Translation, error)
	Get(ctx context.Context, projectID, sentenceID, translationID int) (*models.Translation, error)
}

// CreateTranslationRequest represents the JSON body for translation creation
// swagger:model CreateTranslationRequest
type CreateTranslationRequest struct {
	// Translated text
	// required: true
	Text string `json:"text"`

	// Language code of the translation
	// required: true
	// default: en
	LanguageISO string `json:"language_iso"`

	// Username of the authoring annotator
	// required: true
	AnnotatorUsername string `json:"annotator_username"`
}

// NewCreateTranslationHandler returns an HTTP handler for translation
// creation.
// @Summary Create a translation
// @Description Creates a translation of a sentence. The requester must be an admin or an annotator of the project.
// @Tags translations
// @Accept json
// @Produce json
// @Param project_id path int true "Project id"
// @Param sentence_id path int true "Sentence id"
// @Param createTranslationRequest body handlers.CreateTranslationRequest true "Translation creation request"
// @Success 200 {object} models.Translation
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project or sentence not found"
// @Security BearerAuth
// @Router /projects/{project_id}/sentences/{sentence_id}/translations/ [post]
func NewCreateTranslationHandler(svc TranslationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}
		sentenceID, err := intParam(r, "sentence_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid sentence id")
			return
		}

		var req CreateTranslationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		translation, err := svc.Create(r.Context(), requester(r), projectID, sentenceID, req.Text, req.LanguageISO, req.AnnotatorUsername)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester is not authorized to access this project.")
			case errors.Is(err, services.ErrSentenceNotFound):
				writeError(w, http.StatusNotFound, "No such sentence found in this project.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, translation)
	}
}

// NewGetTranslationHandler returns an HTTP handler for reading one
// translation. The route only resolves the (project, sentence) pair; it
// carries no membership rule.
// @Summary Get a translation
// @Tags translations
// @Produce json
// @Param project_id path int true "Project id"
// @Param sentence_id path int true "Sentence id"
// @Param translation_id path int true "Translation id"
// @Success 200 {object} models.Translation
// @Failure 404 {object} handlers.ErrorResponse "Sentence or translation not found"
// @Security BearerAuth
// @Router /projects/{project_id}/sentences/{sentence_id}/translations/{translation_id} [get]
func NewGetTranslationHandler(svc TranslationServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}
		sentenceID, err := intParam(r, "sentence_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid sentence id")
			return
		}
		translationID, err := intParam(r, "translation_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid translation id")
			return
		}

		translation, err := svc.Get(r.Context(), projectID, sentenceID, translationID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSentenceNotFound):
				writeError(w, http.StatusNotFound, "No such sentence found in this project.")
			case errors.Is(err, services.ErrTranslationNotFound):
				writeError(w, http.StatusNotFound, "No such translation for this sentence.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, translation)
	}
}
