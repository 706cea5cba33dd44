package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
	"github.com/annotatehub/annotation-backend/internal/services"
)

// Registerer defines the registration interface of the auth service.
type Registerer interface {
	Register(ctx context.Context, user models.User, password string) (*models.User, error)
}

// UserServicer defines the interface of the user service.
type UserServicer interface {
	Get(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
	Update(ctx context.Context, req policy.Requester, username string, patch models.UserPatch, password *string) (*models.User, error)
	Delete(ctx context.Context, req policy.Requester, username string) (*models.User, error)
}

// RegisterUserRequest represents the JSON body for user registration
// swagger:model RegisterUserRequest
type RegisterUserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Gender
	Gender *string `json:"gender"`

	// Age
	Age *int `json:"age"`

	// Admin flag
	IsAdmin bool `json:"is_admin"`
}

// UpdateUserRequest represents the JSON body for a partial user update.
// Omitted or null fields keep their stored value.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Gender   *string `json:"gender"`
	Age      *int    `json:"age"`
	IsAdmin  *bool   `json:"is_admin"`
}

// NewRegisterUserHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The username must be free. The password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerUserRequest body handlers.RegisterUserRequest true "User registration request"
// @Success 201 {object} models.User "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Username already taken / invalid request"
// @Router /users/ [post]
func NewRegisterUserHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Register(r.Context(), models.User{
			Username: req.Username,
			Email:    req.Email,
			Gender:   req.Gender,
			Age:      req.Age,
			IsAdmin:  req.IsAdmin,
		}, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUsernameTaken):
				writeError(w, http.StatusBadRequest, "Username `"+req.Username+"` is already taken.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewGetUserHandler returns an HTTP handler for reading one user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{username}/ [get]
func NewGetUserHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.Get(r.Context(), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User `"+username+"` not found.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewListUsersHandler returns an HTTP handler for listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /users/ [get]
func NewListUsersHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit := pageParams(r)

		users, err := svc.List(r.Context(), skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewUpdateUserHandler returns an HTTP handler for partially updating a user.
// @Summary Update a user
// @Description Applies the provided non-null fields. Only the user themselves or an admin may update a record.
// @Tags users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{username}/ [put]
func NewUpdateUserHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Update(r.Context(), requester(r), username, models.UserPatch{
			Email:   req.Email,
			Gender:  req.Gender,
			Age:     req.Age,
			IsAdmin: req.IsAdmin,
		}, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User `"+username+"` not found.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler for deleting a user.
// @Summary Delete a user
// @Description Deletes the record and returns it. Only the user themselves or an admin may delete a record.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User "Deleted user"
// @Failure 403 {object} handlers.ErrorResponse "Permission denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{username}/ [delete]
func NewDeleteUserHandler(svc UserServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.Delete(r.Context(), requester(r), username)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPermissionDenied):
				writeError(w, http.StatusForbidden, "Requester does not have the necessary privileges.")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User `"+username+"` not found.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
