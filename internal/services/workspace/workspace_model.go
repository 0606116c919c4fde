package workspace

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Workspace mirrors the identity provider's organization. The ID is the
// provider's organization id.
type Workspace struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	OwnerID   string    `db:"owner_id" json:"owner_id"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Member struct {
	UserID      string    `db:"user_id" json:"user_id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Role        Role      `db:"role" json:"role"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// MemberWithUser is a membership row joined with the member's user record.
type MemberWithUser struct {
	Member
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	ImageURL string `db:"image_url" json:"image_url"`
}

type CreateWorkspaceRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	OwnerID  string `json:"owner_id"`
	ImageURL string `json:"image_url"`
}

type UpdateWorkspaceRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url"`
}

type AddMemberRequest struct {
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	Role        string `json:"role"`
}
