package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid task status")

type TaskService struct {
	repo *TaskRepo
}

func NewTaskService(repo *TaskRepo) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	return s.repo.Create(ctx, &Task{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusTodo,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
}

func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TaskService) GetForNotification(ctx context.Context, id uuid.UUID) (*TaskForNotification, error) {
	return s.repo.GetForNotification(ctx, id)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Task, error) {
	return s.repo.ListByProject(ctx, projectID)
}

func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req *UpdateTaskRequest) (*Task, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.Update(ctx, id, req)
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
