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

// ProjectServicer defines the interface of the project service.
type ProjectServicer interface {
	Create(ctx context.Context, req policy.Requester, name, pType string) (*models.Project, error)
	Get(ctx context.Context, req policy.Requester, id int) (*models.Project, []models.User, error)
	List(ctx context.Context, req policy.Requester, skip, limit int) ([]models.Project, error)
	Delete(ctx context.Context, req policy.Requester, id int) (*models.Project, error)
}

// CreateProjectRequest represents the JSON body for project creation
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	// Project name
	// required: true
	// default: bible-translation
	Name string `json:"name"`

	// Project type label
	// required: true
	// default: translation
	PType string `json:"p_type"`
}

// ProjectResponse represents a project with its annotators
// swagger:model ProjectResponse
type ProjectResponse struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	PType      string        `json:"p_type"`
	Annotators []models.User `json:"annotators"`
}

// NewCreateProjectHandler returns an HTTP handler for project creation.
// @Summary Create a project
// @Description Creates a project with a unique name. Admins only.
// @Tags projects
// @Accept json
// @Produce json
// @Param createProjectRequest body handlers.CreateProjectRequest true "Project creation request"
// @Success 200 {object} models.Project
// @Failure 400 {object} handlers.ErrorResponse "Project name already taken"
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /projects/ [post]
func NewCreateProjectHandler(svc ProjectServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateProjectRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		project, err := svc.Create(r.Context(), requester(r), req.Name, req.PType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			case errors.Is(err, services.ErrProjectNameTaken):
				writeError(w, http.StatusBadRequest, "There is an already existing project with name `"+req.Name+"`.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, project)
	}
}

// NewGetProjectHandler returns an HTTP handler for reading one project.
// The denied case reports 400, matching the route's historical behavior.
// @Summary Get a project
// @Description Returns the project and its annotators. The requester must be an admin and an annotator of the project.
// @Tags projects
// @Produce json
// @Param project_id path int true "Project id"
// @Success 200 {object} handlers.ProjectResponse
// @Failure 400 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/ [get]
func NewGetProjectHandler(svc ProjectServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}

		project, annotators, err := svc.Get(r.Context(), requester(r), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			case errors.Is(err, services.ErrProjectAccessDenied):
				writeError(w, http.StatusBadRequest, "Requester does not have the necessary privileges.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, ProjectResponse{
			ID:         project.ID,
			Name:       project.Name,
			PType:      project.PType,
			Annotators: annotators,
		})
	}
}

// NewListProjectsHandler returns an HTTP handler for listing projects.
// @Summary List projects
// @Description Returns a page of projects. Admins only.
// @Tags projects
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Project
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Security BearerAuth
// @Router /projects/ [get]
func NewListProjectsHandler(svc ProjectServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pageParams(r)

		projects, err := svc.List(r.Context(), requester(r), skip, limit)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, projects)
	}
}

// NewDeleteProjectHandler returns an HTTP handler for deleting a project.
// @Summary Delete a project
// @Description Deletes the project and returns it. Admins only.
// @Tags projects
// @Produce json
// @Param project_id path int true "Project id"
// @Success 200 {object} models.Project "Deleted project"
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/ [delete]
func NewDeleteProjectHandler(svc ProjectServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}

		project, err := svc.Delete(r.Context(), requester(r), projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, project)
	}
}
