package workspace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrWorkspaceNotFound = errors.New("workspace not found")

type WorkspaceRepo struct {
	db *sqlx.DB
}

func NewWorkspaceRepo(db *sqlx.DB) *WorkspaceRepo {
	return &WorkspaceRepo{db: db}
}

// CreateWithAdmin inserts the workspace and the creator's ADMIN membership in
// one transaction, so a crash cannot leave a workspace without an admin.
// Replayed creation events fall through the ON CONFLICT clauses untouched.
func (r *WorkspaceRepo) CreateWithAdmin(ctx context.Context, w *Workspace) (*Workspace, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO workspaces (id, name, slug, owner_id, image_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, slug = EXCLUDED.slug, image_url = EXCLUDED.image_url, updated_at = NOW()
		RETURNING id, name, slug, owner_id, image_url, created_at, updated_at
	`
	var saved Workspace
	if err := tx.GetContext(ctx, &saved, query, w.ID, w.Name, w.Slug, w.OwnerID, w.ImageURL); err != nil {
		return nil, fmt.Errorf("failed to insert workspace: %w", err)
	}

	memberQuery := `
		INSERT INTO workspace_members (user_id, workspace_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, workspace_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, memberQuery, w.OwnerID, w.ID, RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to insert admin membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &saved, nil
}

func (r *WorkspaceRepo) Update(ctx context.Context, req *UpdateWorkspaceRequest) (*Workspace, error) {
	query := `
		UPDATE workspaces
		SET name = $2, slug = $3, image_url = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, slug, owner_id, image_url, created_at, updated_at
	`
	var saved Workspace
	err := r.db.GetContext(ctx, &saved, query, req.ID, req.Name, req.Slug, req.ImageURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}
	return &saved, nil
}

func (r *WorkspaceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}

func (r *WorkspaceRepo) GetByID(ctx context.Context, id string) (*Workspace, error) {
	query := `
		SELECT id, name, slug, owner_id, image_url, created_at, updated_at
		FROM workspaces
		WHERE id = $1
	`
	var w Workspace
	err := r.db.GetContext(ctx, &w, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return &w, nil
}

func (r *WorkspaceRepo) ListForUser(ctx context.Context, userID string) ([]Workspace, error) {
	query := `
		SELECT w.id, w.name, w.slug, w.owner_id, w.image_url, w.created_at, w.updated_at
		FROM workspaces w
		JOIN workspace_members m ON m.workspace_id = w.id
		WHERE m.user_id = $1
		ORDER BY w.created_at
	`
	workspaces := []Workspace{}
	if err := r.db.SelectContext(ctx, &workspaces, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return workspaces, nil
}

// AddMember records a membership. One row per (user, workspace); replays and
// already-member users are no-ops.
func (r *WorkspaceRepo) AddMember(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO workspace_members (user_id, workspace_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, workspace_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, m.UserID, m.WorkspaceID, m.Role); err != nil {
		return fmt.Errorf("failed to add workspace member: %w", err)
	}
	return nil
}

func (r *WorkspaceRepo) ListMembers(ctx context.Context, workspaceID string) ([]MemberWithUser, error) {
	query := `
		SELECT m.user_id, m.workspace_id, m.role, m.created_at, u.name, u.email, u.image_url
		FROM workspace_members m
		JOIN users u ON u.id = m.user_id
		WHERE m.workspace_id = $1
		ORDER BY m.created_at
	`
	members := []MemberWithUser{}
	if err := r.db.SelectContext(ctx, &members, query, workspaceID); err != nil {
		return nil, fmt.Errorf("failed to list workspace members: %w", err)
	}
	return members, nil
}

func (r *WorkspaceRepo) IsMember(ctx context.Context, workspaceID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM workspace_members WHERE workspace_id = $1 AND user_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, workspaceID, userID); err != nil {
		return false, fmt.Errorf("failed to check workspace membership: %w", err)
	}
	return exists, nil
}
