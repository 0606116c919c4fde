package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskRepo struct {
	db *sqlx.DB
}

func NewTaskRepo(db *sqlx.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, t *Task) (*Task, error) {
	query := `
		INSERT INTO tasks (project_id, title, description, status, assignee_id, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, project_id, title, description, status, assignee_id, due_date, created_at, updated_at
	`
	var saved Task
	err := r.db.GetContext(ctx, &saved, query, t.ProjectID, t.Title, t.Description, t.Status, t.AssigneeID, t.DueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	return &saved, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	query := `
		SELECT id, project_id, title, description, status, assignee_id, due_date, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`
	var t Task
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return &t, nil
}

// GetForNotification loads the task joined with its assignee and project in a
// single fetch. Only tasks with an assignee qualify.
func (r *TaskRepo) GetForNotification(ctx context.Context, id uuid.UUID) (*TaskForNotification, error) {
	query := `
		SELECT t.id, t.project_id, t.title, t.description, t.status, t.assignee_id, t.due_date,
		       t.created_at, t.updated_at,
		       u.name AS assignee_name, u.email AS assignee_email, p.name AS project_name
		FROM tasks t
		JOIN users u ON u.id = t.assignee_id
		JOIN projects p ON p.id = t.project_id
		WHERE t.id = $1
	`
	var t TaskForNotification
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task for notification: %w", err)
	}
	return &t, nil
}

func (r *TaskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Task, error) {
	query := `
		SELECT id, project_id, title, description, status, assignee_id, due_date, created_at, updated_at
		FROM tasks
		WHERE project_id = $1
		ORDER BY created_at
	`
	tasks := []Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies the provided fields. Concurrent updates are last write wins.
func (r *TaskRepo) Update(ctx context.Context, id uuid.UUID, req *UpdateTaskRequest) (*Task, error) {
	query := `
		UPDATE tasks
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    status = COALESCE($4, status),
		    assignee_id = COALESCE($5, assignee_id),
		    due_date = COALESCE($6, due_date),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, project_id, title, description, status, assignee_id, due_date, created_at, updated_at
	`
	var saved Task
	err := r.db.GetContext(ctx, &saved, query, id, req.Title, req.Description, req.Status, req.AssigneeID, req.DueDate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &saved, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if count, err := res.RowsAffected(); err == nil && count == 0 {
		return ErrTaskNotFound
	}
	return nil
}
