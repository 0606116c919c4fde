package comment

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TaskID    uuid.UUID `db:"task_id" json:"task_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CommentWithAuthor is a comment joined with its author for display.
type CommentWithAuthor struct {
	Comment
	AuthorName     string `db:"author_name" json:"author_name"`
	AuthorImageURL string `db:"author_image_url" json:"author_image_url"`
}

type AddCommentRequest struct {
	TaskID  uuid.UUID `json:"task_id"`
	Content string    `json:"content"`
}
