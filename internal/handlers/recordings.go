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

// RecordingServicer defines the interface of the recording service.
type RecordingServicer interface {
	Create(ctx context.Context, req policy.Requester, projectID, sentenceID int, audioFilePath, languageISO, annotatorUsername string) (*models.Recording, error)
	Get(ctx context.Context, projectID, sentenceID, recordingID int) (*models.Recording, error)
}

// CreateRecordingRequest represents the JSON body for recording creation
// swagger:model CreateRecordingRequest
type CreateRecordingRequest struct {
	// Path of the stored audio file
	// required: true
	AudioFilePath string `json:"audio_file_path"`

	// Language code of the recording
	// required: true
	// default: en
	LanguageISO string `json:"language_iso"`

	// Username of the authoring annotator
	// required: true
	AnnotatorUsername string `json:"annotator_username"`
}

// NewCreateRecordingHandler returns an HTTP handler for recording creation.
// Recordings follow the same access rule as translations.
// @Summary Create a recording
// @Description Creates a recording of a sentence. The requester must be an admin or an annotator of the project.
// @Tags recordings
// @Accept json
// @Produce json
// @Param project_id path int true "Project id"
// @Param sentence_id path int true "Sentence id"
// @Param createRecordingRequest body handlers.CreateRecordingRequest true "Recording creation request"
// @Success 200 {object} models.Recording
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project or sentence not found"
// @Security BearerAuth
// @Router /projects/{project_id}/sentences/{sentence_id}/recordings/ [post]
func NewCreateRecordingHandler(svc RecordingServicer) http.HandlerFunc {
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

		var req CreateRecordingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		recording, err := svc.Create(r.Context(), requester(r), projectID, sentenceID, req.AudioFilePath, req.LanguageISO, req.AnnotatorUsername)
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

		writeJSON(w, http.StatusOK, recording)
	}
}

// NewGetRecordingHandler returns an HTTP handler for reading one recording.
// @Summary Get a recording
// @Tags recordings
// @Produce json
// @Param project_id path int true "Project id"
// @Param sentence_id path int true "Sentence id"
// @Param recording_id path int true "Recording id"
// @Success 200 {object} models.Recording
// @Failure 404 {object} handlers.ErrorResponse "Sentence or recording not found"
// @Security BearerAuth
// @Router /projects/{project_id}/sentences/{sentence_id}/recordings/{recording_id} [get]
func NewGetRecordingHandler(svc RecordingServicer) http.HandlerFunc {
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
		recordingID, err := intParam(r, "recording_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid recording id")
			return
		}

		recording, err := svc.Get(r.Context(), projectID, sentenceID, recordingID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSentenceNotFound):
				writeError(w, http.StatusNotFound, "No such sentence found in this project.")
			case errors.Is(err, services.ErrRecordingNotFound):
				writeError(w, http.StatusNotFound, "No such recording for this sentence.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, recording)
	}
}
