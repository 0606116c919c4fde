package project

import (
	"context"

	"github.com/google/uuid"
)

type ProjectService struct {
	repo *ProjectRepo
}

func NewProjectService(repo *ProjectRepo) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) Create(ctx context.Context, req *CreateProjectRequest, creatorID string) (*Project, error) {
	return s.repo.Create(ctx, &Project{
		WorkspaceID: req.WorkspaceID,
		Name:        req.Name,
		Description: req.Description,
	}, creatorID)
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) GetWithMembers(ctx context.Context, id uuid.UUID) (*ProjectWithMembers, error) {
	return s.repo.GetWithMembers(ctx, id)
}

func (s *ProjectService) ListByWorkspace(ctx context.Context, workspaceID string) ([]Project, error) {
	return s.repo.ListByWorkspace(ctx, workspaceID)
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*Project, error) {
	return s.repo.Update(ctx, id, req)
}

func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) AddMember(ctx context.Context, projectID uuid.UUID, userID string) error {
	return s.repo.AddMember(ctx, projectID, userID)
}
