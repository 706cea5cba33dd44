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

// RoleServicer defines the interface of the role service.
type RoleServicer interface {
	Create(ctx context.Context, req policy.Requester, projectID int, username, role string) (*models.Role, error)
	List(ctx context.Context, req policy.Requester, projectID, skip, limit int) ([]models.Role, error)
	Delete(ctx context.Context, req policy.Requester, projectID, roleID int) (*models.Role, error)
}

// CreateRoleRequest represents the JSON body for granting a project role
// swagger:model CreateRoleRequest
type CreateRoleRequest struct {
	// Username of the user to add
	// required: true
	Username string `json:"username"`

	// Role label
	// required: true
	// default: annotator
	Role string `json:"role"`
}

// NewCreateRoleHandler returns an HTTP handler for granting a role.
// @Summary Grant a project role
// @Description Adds a user to the project's annotators. Admins only.
// @Tags roles
// @Accept json
// @Produce json
// @Param project_id path int true "Project id"
// @Param createRoleRequest body handlers.CreateRoleRequest true "Role creation request"
// @Success 200 {object} models.Role
// @Failure 400 {object} handlers.ErrorResponse "User already holds a role in the project"
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project or user not found"
// @Security BearerAuth
// @Router /projects/{project_id}/roles/ [post]
func NewCreateRoleHandler(svc RoleServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}

		var req CreateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		role, err := svc.Create(r.Context(), requester(r), projectID, req.Username, req.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User `"+req.Username+"` not found.")
			case errors.Is(err, services.ErrRoleTaken):
				writeError(w, http.StatusBadRequest, "User `"+req.Username+"` already holds a role in this project.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, role)
	}
}

// NewListRolesHandler returns an HTTP handler for listing a project's roles.
// @Summary List project roles
// @Description Returns a page of the project's roles. Admins only.
// @Tags roles
// @Produce json
// @Param project_id path int true "Project id"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.Role
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/roles/ [get]
func NewListRolesHandler(svc RoleServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}
		skip, limit := pageParams(r)

		roles, err := svc.List(r.Context(), requester(r), projectID, skip, limit)
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

		writeJSON(w, http.StatusOK, roles)
	}
}

// NewDeleteRoleHandler returns an HTTP handler for revoking a role.
// @Summary Revoke a project role
// @Description Removes a role from the project and returns it. Admins only.
// @Tags roles
// @Produce json
// @Param project_id path int true "Project id"
// @Param role_id path int true "Role id"
// @Success 200 {object} models.Role "Deleted role"
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "Project or role not found"
// @Security BearerAuth
// @Router /projects/{project_id}/roles/{role_id} [delete]
func NewDeleteRoleHandler(svc RoleServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := intParam(r, "project_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid project id")
			return
		}
		roleID, err := intParam(r, "role_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid role id")
			return
		}

		role, err := svc.Delete(r.Context(), requester(r), projectID, roleID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				writeError(w, http.StatusNotFound, "No such project with the given id.")
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			case errors.Is(err, services.ErrRoleNotFound):
				writeError(w, http.StatusNotFound, "No such role in this project.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, role)
	}
}
