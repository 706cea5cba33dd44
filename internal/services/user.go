package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
)

// Error variables
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPermissionDenied = errors.New("requester does not have the necessary privileges")
)

// UserService handles reading, updating and deleting user records.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Get returns one user by username.
func (svc *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns a page of users.
func (svc *UserService) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	users, err := svc.reader.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// Update applies a partial update to the target user. Only the target user
// or an admin may update a record. A provided password is re-hashed.
func (svc *UserService) Update(ctx context.Context, req policy.Requester, username string, patch models.UserPatch, password *string) (*models.User, error) {
	if !policy.CanModifyUser(req, username) {
		return nil, ErrPermissionDenied
	}

	if password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		h := string(hashed)
		patch.HashedPassword = &h
	}

	user, err := svc.writer.Update(ctx, username, patch)
	if err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

// Delete removes the target user and returns the deleted record. Only the
// target user or an admin may delete a record.
func (svc *UserService) Delete(ctx context.Context, req policy.Requester, username string) (*models.User, error) {
	if !policy.CanModifyUser(req, username) {
		return nil, ErrPermissionDenied
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := svc.writer.Delete(ctx, username); err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return nil, err
	}

	return user, nil
}
