package comment

import (
	"context"
	"errors"

	"github.com/curaious/taskdeck/internal/services/project"
	"github.com/curaious/taskdeck/internal/services/task"
	"github.com/google/uuid"
)

var ErrNotProjectMember = errors.New("user is not a member of the project")

// TaskGetter resolves a task to find its owning project.
type TaskGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error)
}

// ProjectGetter loads a project with its members for the authorization check.
type ProjectGetter interface {
	GetWithMembers(ctx context.Context, id uuid.UUID) (*project.ProjectWithMembers, error)
}

// CommentStore persists and lists comments.
type CommentStore interface {
	Insert(ctx context.Context, c *Comment) (*Comment, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]CommentWithAuthor, error)
}

type CommentService struct {
	repo     CommentStore
	tasks    TaskGetter
	projects ProjectGetter
}

func NewCommentService(repo CommentStore, tasks TaskGetter, projects ProjectGetter) *CommentService {
	return &CommentService{repo: repo, tasks: tasks, projects: projects}
}

// Add persists a comment after checking that the author belongs to the project
// owning the task. A missing task or project is not found; a non-member author
// is a permission error, not a data error.
func (s *CommentService) Add(ctx context.Context, userID string, req *AddCommentRequest) (*Comment, error) {
	t, err := s.tasks.GetByID(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	p, err := s.projects.GetWithMembers(ctx, t.ProjectID)
	if err != nil {
		return nil, err
	}

	if !p.HasMember(userID) {
		return nil, ErrNotProjectMember
	}

	return s.repo.Insert(ctx, &Comment{
		TaskID:  req.TaskID,
		UserID:  userID,
		Content: req.Content,
	})
}

// List returns a task's comments newest first. There is no membership check
// here; the route-level authentication gate is the only guard.
func (s *CommentService) List(ctx context.Context, taskID uuid.UUID) ([]CommentWithAuthor, error) {
	return s.repo.ListByTask(ctx, taskID)
}
