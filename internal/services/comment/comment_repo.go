package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CommentRepo struct {
	db *sqlx.DB
}

func NewCommentRepo(db *sqlx.DB) *CommentRepo {
	return &CommentRepo{db: db}
}

func (r *CommentRepo) Insert(ctx context.Context, c *Comment) (*Comment, error) {
	query := `
		INSERT INTO comments (task_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, task_id, user_id, content, created_at
	`
	var saved Comment
	err := r.db.GetContext(ctx, &saved, query, c.TaskID, c.UserID, c.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	return &saved, nil
}

// ListByTask returns all comments for a task with their authors, newest first.
func (r *CommentRepo) ListByTask(ctx context.Context, taskID uuid.UUID) ([]CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.task_id, c.user_id, c.content, c.created_at,
		       u.name AS author_name, u.image_url AS author_image_url
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.task_id = $1
		ORDER BY c.created_at DESC
	`
	comments := []CommentWithAuthor{}
	if err := r.db.SelectContext(ctx, &comments, query, taskID); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
