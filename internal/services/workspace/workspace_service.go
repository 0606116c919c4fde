package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRole = errors.New("invalid workspace role")

type WorkspaceService struct {
	repo *WorkspaceRepo
}

func NewWorkspaceService(repo *WorkspaceRepo) *WorkspaceService {
	return &WorkspaceService{repo: repo}
}

// Create stores the workspace and makes the creator an ADMIN member, atomically.
func (s *WorkspaceService) Create(ctx context.Context, req *CreateWorkspaceRequest) (*Workspace, error) {
	return s.repo.CreateWithAdmin(ctx, &Workspace{
		ID:       req.ID,
		Name:     req.Name,
		Slug:     req.Slug,
		OwnerID:  req.OwnerID,
		ImageURL: req.ImageURL,
	})
}

func (s *WorkspaceService) Update(ctx context.Context, req *UpdateWorkspaceRequest) (*Workspace, error) {
	return s.repo.Update(ctx, req)
}

func (s *WorkspaceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *WorkspaceService) GetByID(ctx context.Context, id string) (*Workspace, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WorkspaceService) ListForUser(ctx context.Context, userID string) ([]Workspace, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *WorkspaceService) AddMember(ctx context.Context, req *AddMemberRequest) error {
	role, err := NormalizeRole(req.Role)
	if err != nil {
		return err
	}

	return s.repo.AddMember(ctx, &Member{
		UserID:      req.UserID,
		WorkspaceID: req.WorkspaceID,
		Role:        role,
	})
}

func (s *WorkspaceService) ListMembers(ctx context.Context, workspaceID string) ([]MemberWithUser, error) {
	return s.repo.ListMembers(ctx, workspaceID)
}

func (s *WorkspaceService) IsMember(ctx context.Context, workspaceID, userID string) (bool, error) {
	return s.repo.IsMember(ctx, workspaceID, userID)
}

// NormalizeRole upper-cases the provider's role name and checks it against the
// enumerated set. The provider sends names like "admin" or "member".
func NormalizeRole(name string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(name))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMember:
		return RoleMember, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, name)
	}
}
