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

// SentenceServicer defines the interface of the sentence service.
type SentenceServicer interface {
	CreateBatch(ctx context.Context, req policy.Requester, projectID int, inputs []models.SentenceInput) ([]models.Sentence, error)
	Get(ctx context.Context, req policy.Requester, projectID, sentenceID int) (*models.Sentence, error)
	List(ctx context.Context, req policy.Requester, projectID, skip, limit int) ([]models.Sentence, error)
}

// NewCreateSentencesHandler returns an HTTP handler for batch sentence
// creation. The body must be a JSON array; anything else is a 422. The whole
// batch runs inside one transaction, so the response order matches the input
// order and a failure creates nothing.
// @Summary Create sentences
// @Description Creates the given sentences under the project, in input order. Admins only.
// @Tags sentences
// @Accept json
// @Produce json
// @Param project_id path int true "Project id"
// @Param sentences body []models.SentenceInput true "Sentences to create"
// @Success 200 {array} models.Sentence "Created sentences in input order"
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Failure 422 {object} handlers.ErrorResponse "Body is not a list"
// @Security BearerAuth
// @Router /projects/{project_id}/sentences/ [post]
func NewCreateSentencesHandler(svc SentenceServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}

		var inputs []models.SentenceInput
		if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Expects an object of type `list`.")
			return
		}

		sentences, err := svc.CreateBatch(r.Context(), requester(r), projectID, inputs)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, sentences)
	}
}

// NewGetSentenceHandler returns an HTTP handler for reading one sentence.
// @Summary Get a sentence
// @Description Returns one sentence of the project. The requester must be an admin or an annotator of the project.
// @Tags sentences
// @Produce json
// @Param project_id path int true "Project id"
// @Param sentence_id path int true "Sentence id"
// @Success 200 {object} models.Sentence
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project or sentence not found"
// @Security BearerAuth
// @Router /projects/{project_id}/sentences/{sentence_id} [get]
func NewGetSentenceHandler(svc SentenceServicer) http.HandlerFunc {
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

		sentence, err := svc.Get(r.Context(), requester(r), projectID, sentenceID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester is not authorized to access this project.")
			case errors.Is(err, services.ErrSentenceNotFound):
				writeError(w, http.StatusNotFound, "No such sentence is associated with this project.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, sentence)
	}
}

// NewListSentencesHandler returns an HTTP handler for listing a project's
// sentences.
// @Summary List sentences
// @Description Returns a page of the project's sentences. The requester must be an admin or an annotator of the project.
// @Tags sentences
// @Produce json
// @Param project_id path int true "Project id"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Sentence
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/sentences/ [get]
func NewListSentencesHandler(svc SentenceServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}
		skip, limit := pageParams(r)

		sentences, err := svc.List(r.Context(), requester(r), projectID, skip, limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester is not authorized to access this project.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, sentences)
	}
}
