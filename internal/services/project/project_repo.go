package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepo struct {
	db *sqlx.DB
}

func NewProjectRepo(db *sqlx.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create inserts the project and makes the creator its first member, in one
// transaction.
func (r *ProjectRepo) Create(ctx context.Context, p *Project, creatorID string) (*Project, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projects (workspace_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, workspace_id, name, description, created_at, updated_at
	`
	var saved Project
	if err := tx.GetContext(ctx, &saved, query, p.WorkspaceID, p.Name, p.Description); err != nil {
		return nil, fmt.Errorf("failed to insert project: %w", err)
	}

	memberQuery := `
		INSERT INTO project_members (project_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, memberQuery, saved.ID, creatorID); err != nil {
		return nil, fmt.Errorf("failed to insert project member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &saved, nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	query := `
		SELECT id, workspace_id, name, description, created_at, updated_at
		FROM projects
		WHERE id = $1
	`
	var p Project
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &p, nil
}

// GetWithMembers loads a project and its member users. Comment authorization
// checks membership through this.
func (r *ProjectRepo) GetWithMembers(ctx context.Context, id uuid.UUID) (*ProjectWithMembers, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT m.user_id, u.name, u.email, u.image_url
		FROM project_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.project_id = $1
	`
	members := []MemberUser{}
	if err := r.db.SelectContext(ctx, &members, query, id); err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}

	return &ProjectWithMembers{Project: *p, Members: members}, nil
}

func (r *ProjectRepo) ListByWorkspace(ctx context.Context, workspaceID string) ([]Project, error) {
	query := `
		SELECT id, workspace_id, name, description, created_at, updated_at
		FROM projects
		WHERE workspace_id = $1
		ORDER BY created_at
	`
	projects := []Project{}
	if err := r.db.SelectContext(ctx, &projects, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (r *ProjectRepo) Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*Project, error) {
	query := `
		UPDATE projects
		SET name = COALESCE($2, name), description = COALESCE($3, description), updated_at = NOW()
		WHERE id = $1
		RETURNING id, workspace_id, name, description, created_at, updated_at
	`
	var saved Project
	err := r.db.GetContext(ctx, &saved, query, id, req.Name, req.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &saved, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if count, err := res.RowsAffected(); err == nil && count == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepo) AddMember(ctx context.Context, projectID uuid.UUID, userID string) error {
	query := `
		INSERT INTO project_members (project_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, projectID, userID); err != nil {
		return fmt.Errorf("failed to add project member: %w", err)
	}
	return nil
}
