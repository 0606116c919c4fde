package project

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// MemberUser is a project member joined with their user record.
type MemberUser struct {
	UserID   string `db:"user_id" json:"user_id"`
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	ImageURL string `db:"image_url" json:"image_url"`
}

type ProjectWithMembers struct {
	Project
	Members []MemberUser `json:"members"`
}

// HasMember reports whether the given user belongs to the project.
func (p *ProjectWithMembers) HasMember(userID string) bool {
	for _, m := range p.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

type CreateProjectRequest struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
