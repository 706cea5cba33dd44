package services

import (
	"context"
	"errors"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/policy"
)

// Error variables
var (
	ErrRoleNotFound = errors.New("role not found in project")
	ErrRoleTaken    = errors.New("user already holds a role in project")
)

// RoleReader defines read-only operations for roles.
type RoleReader interface {
	GetByID(ctx context.Context, id int) (*models.Role, error)
	GetByUser(ctx context.Context, projectID int, username string) (*models.Role, error)
	ListByProject(ctx context.Context, projectID, skip, limit int) ([]models.Role, error)
}

// RoleWriter defines write operations for roles.
type RoleWriter interface {
	Save(ctx context.Context, projectID int, username, role string) (*models.Role, error)
	Delete(ctx context.Context, id int) error
}

// RoleService manages project memberships. All operations are admin only.
type RoleService struct {
	projects ProjectReader
	users    UserReader
	reader   RoleReader
	writer   RoleWriter
}

// NewRoleService creates a new RoleService instance.
func NewRoleService(projects ProjectReader, users UserReader, reader RoleReader, writer RoleWriter) *RoleService {
	return &RoleService{
		projects: projects,
		users:    users,
		reader:   reader,
		writer:   writer,
	}
}

// Create grants a user a role in the project. The project and the user must
// resolve, and the user must not already hold a role in the project.
func (svc *RoleService) Create(ctx context.Context, req policy.Requester, projectID int, username, role string) (*models.Role, error) {
	if err := svc.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := svc.reader.GetByUser(ctx, projectID, username)
	if err != nil {
		logger.Log.Errorw("failed to check existing role", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleTaken
	}

	saved, err := svc.writer.Save(ctx, projectID, username, role)
	if err != nil {
		logger.Log.Errorw("failed to save role", "err", err)
		return nil, err
	}

	return saved, nil
}

// List returns a page of the project's roles.
func (svc *RoleService) List(ctx context.Context, req policy.Requester, projectID, skip, limit int) ([]models.Role, error) {
	if err := svc.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	roles, err := svc.reader.ListByProject(ctx, projectID, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list roles", "err", err)
		return nil, err
	}

	return roles, nil
}

// Delete revokes a role and returns the deleted record. The role must belong
// to the addressed project.
func (svc *RoleService) Delete(ctx context.Context, req policy.Requester, projectID, roleID int) (*models.Role, error) {
	if err := svc.authorize(ctx, req, projectID); err != nil {
		return nil, err
	}

	role, err := svc.reader.GetByID(ctx, roleID)
	if err != nil {
		logger.Log.Errorw("failed to get role", "err", err)
		return nil, err
	}
	if role == nil || role.ProjectID != projectID {
		return nil, ErrRoleNotFound
	}

	if err := svc.writer.Delete(ctx, roleID); err != nil {
		logger.Log.Errorw("failed to delete role", "err", err)
		return nil, err
	}

	return role, nil
}

// authorize resolves the project, then applies the admin rule.
func (svc *RoleService) authorize(ctx context.Context, req policy.Requester, projectID int) error {
	project, err := svc.projects.GetByID(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "err", err)
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}

	if !policy.CanManageProjects(req) {
		return ErrPermissionDenied
	}

	return nil
}
