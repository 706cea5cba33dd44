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
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectNameTaken = errors.New("project name is already taken")
	// ErrProjectAccessDenied marks the denied project read, which the route
	// historically reports as a 400 rather than a 403.
	ErrProjectAccessDenied = errors.New("requester may not access this project")
)

// ProjectReader defines read-only operations for projects.
type ProjectReader interface {
	GetByID(ctx context.Context, id int) (*models.Project, error)
	GetByName(ctx context.Context, name string) (*models.Project, error)
	List(ctx context.Context, skip, limit int) ([]models.Project, error)
	ListAnnotators(ctx context.Context, projectID int) ([]models.User, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Save(ctx context.Context, name, pType string) (*models.Project, error)
	Delete(ctx context.Context, id int) error
}

// ProjectService handles project creation, lookup and deletion.
type ProjectService struct {
	reader ProjectReader
	writer ProjectWriter
}

// NewProjectService creates a new ProjectService instance.
func NewProjectService(reader ProjectReader, writer ProjectWriter) *ProjectService {
	return &ProjectService{
		reader: reader,
		writer: writer,
	}
}

// Create stores a new project. Admins only; the name must be free.
func (svc *ProjectService) Create(ctx context.Context, req policy.Requester, name, pType string) (*models.Project, error) {
	if !policy.CanManageProjects(req) {
		return nil, ErrPermissionDenied
	}

	existing, err := svc.reader.GetByName(ctx, name)
	if err != nil {
		logger.Log.Errorw("failed to check project name", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("project name already taken", "name", name)
		return nil, ErrProjectNameTaken
	}

	project, err := svc.writer.Save(ctx, name, pType)
	if err != nil {
		logger.Log.Errorw("failed to save project", "err", err)
		return nil, err
	}

	return project, nil
}

// Get returns one project together with its annotators. The project is
// resolved before the permission check, so a missing id always reads as not
// found. Access requires the requester to be an admin and an annotator of
// the project.
func (svc *ProjectService) Get(ctx context.Context, req policy.Requester, id int) (*models.Project, []models.User, error) {
	project, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get project", "err", err)
		return nil, nil, err
	}
	if project == nil {
		return nil, nil, ErrProjectNotFound
	}

	annotators, err := svc.reader.ListAnnotators(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list annotators", "err", err)
		return nil, nil, err
	}

	if !policy.CanReadProject(req, usernames(annotators)) {
		return nil, nil, ErrProjectAccessDenied
	}

	return project, annotators, nil
}

// List returns a page of projects. Admins only.
func (svc *ProjectService) List(ctx context.Context, req policy.Requester, skip, limit int) ([]models.Project, error) {
	if !policy.CanManageProjects(req) {
		return nil, ErrPermissionDenied
	}

	projects, err := svc.reader.List(ctx, skip, limit)
	if err != nil {
		logger.Log.Errorw("failed to list projects", "err", err)
		return nil, err
	}

	return projects, nil
}

// Delete removes a project and returns the deleted record. Admins only.
func (svc *ProjectService) Delete(ctx context.Context, req policy.Requester, id int) (*models.Project, error) {
	if !policy.CanManageProjects(req) {
		return nil, ErrPermissionDenied
	}

	project, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get project", "err", err)
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	if err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete project", "err", err)
		return nil, err
	}

	return project, nil
}

// usernames projects a user list onto its usernames.
func usernames(users []models.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}
