package events

import "encoding/json"

// Event types delivered by the identity provider webhook, plus the internal
// application event emitted when a task gets an assignee.
const (
	UserCreated         = "user.created"
	UserUpdated         = "user.updated"
	UserDeleted         = "user.deleted"
	OrganizationCreated = "organization.created"
	OrganizationUpdated = "organization.updated"
	OrganizationDeleted = "organization.deleted"
	InvitationAccepted  = "organizationInvitation.accepted"
	TaskAssigned        = "task.assigned"
)

// Envelope is the outer webhook payload: a type discriminator and the raw data
// object matching one of the payload structs below.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// UserData is the provider's user object for user.created / user.updated / user.deleted.
type UserData struct {
	ID             string         `json:"id"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
}

// PrimaryEmail returns the first listed address, the one mirrored locally.
func (d UserData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

// OrganizationData is the provider's organization object for the organization.* events.
type OrganizationData struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedBy string `json:"created_by"`
	ImageURL  string `json:"image_url"`
}

// InvitationData is sent when a user accepts an organization invitation.
type InvitationData struct {
	OrganizationID string `json:"organization_id"`
	UserID         string `json:"user_id"`
	RoleName       string `json:"role_name"`
}

// TaskAssignedData is the internal event that starts the notification workflow.
type TaskAssignedData struct {
	TaskID string `json:"taskId"`
	Origin string `json:"origin"`
}
