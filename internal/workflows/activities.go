package workflows

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/curaious/taskdeck/internal/events"
	"github.com/curaious/taskdeck/internal/mailer"
	"github.com/curaious/taskdeck/internal/services"
	"github.com/curaious/taskdeck/internal/services/task"
	"github.com/curaious/taskdeck/internal/services/user"
	"github.com/curaious/taskdeck/internal/services/workspace"
	"github.com/google/uuid"
)

// Activities holds the side-effecting steps the workflows execute. Everything
// durable goes through the service layer; email goes through the mailer.
type Activities struct {
	svc    *services.Services
	mailer mailer.Mailer
}

func NewActivities(svc *services.Services, m mailer.Mailer) *Activities {
	return &Activities{svc: svc, mailer: m}
}

func (a *Activities) UpsertUser(ctx context.Context, data events.UserData) error {
	_, err := a.svc.User.Upsert(ctx, &user.UpsertUserRequest{
		ID:        data.ID,
		Email:     data.PrimaryEmail(),
		FirstName: data.FirstName,
		LastName:  data.LastName,
		ImageURL:  data.ImageURL,
	})
	return err
}

func (a *Activities) DeleteUser(ctx context.Context, id string) error {
	return a.svc.User.Delete(ctx, id)
}

func (a *Activities) CreateWorkspace(ctx context.Context, data events.OrganizationData) error {
	_, err := a.svc.Workspace.Create(ctx, &workspace.CreateWorkspaceRequest{
		ID:       data.ID,
		Name:     data.Name,
		Slug:     data.Slug,
		OwnerID:  data.CreatedBy,
		ImageURL: data.ImageURL,
	})
	return err
}

func (a *Activities) UpdateWorkspace(ctx context.Context, data events.OrganizationData) error {
	_, err := a.svc.Workspace.Update(ctx, &workspace.UpdateWorkspaceRequest{
		ID:       data.ID,
		Name:     data.Name,
		Slug:     data.Slug,
		ImageURL: data.ImageURL,
	})
	if errors.Is(err, workspace.ErrWorkspaceNotFound) {
		// update raced a deletion, nothing left to sync
		slog.WarnContext(ctx, "Workspace update for missing workspace", slog.String("workspace_id", data.ID))
		return nil
	}
	return err
}

func (a *Activities) DeleteWorkspace(ctx context.Context, id string) error {
	return a.svc.Workspace.Delete(ctx, id)
}

func (a *Activities) AddWorkspaceMember(ctx context.Context, data events.InvitationData) error {
	return a.svc.Workspace.AddMember(ctx, &workspace.AddMemberRequest{
		UserID:      data.UserID,
		WorkspaceID: data.OrganizationID,
		Role:        data.RoleName,
	})
}

// GetTaskForNotification fetches the task with its assignee and project. A
// task that no longer exists yields nil, which the workflow treats as "end
// silently" rather than a retryable failure.
func (a *Activities) GetTaskForNotification(ctx context.Context, taskID string) (*task.TaskForNotification, error) {
	id, err := uuid.Parse(taskID)
	if err != nil {
		return nil, err
	}

	t, err := a.svc.Task.GetForNotification(ctx, id)
	if errors.Is(err, task.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// TaskEmailInput carries the resolved task fields into the email activities.
type TaskEmailInput struct {
	To           string    `json:"to"`
	AssigneeName string    `json:"assignee_name"`
	ProjectName  string    `json:"project_name"`
	Title        string    `json:"title"`
	DueDate      time.Time `json:"due_date"`
	Origin       string    `json:"origin"`
}

func (a *Activities) SendAssignmentEmail(ctx context.Context, in TaskEmailInput) error {
	msg, err := mailer.AssignmentEmail(in.To, in.AssigneeName, in.ProjectName, in.Title, in.DueDate, in.Origin)
	if err != nil {
		return err
	}
	return a.mailer.Send(ctx, msg)
}

func (a *Activities) SendReminderEmail(ctx context.Context, in TaskEmailInput) error {
	msg, err := mailer.ReminderEmail(in.To, in.AssigneeName, in.ProjectName, in.Title, in.Origin)
	if err != nil {
		return err
	}
	return a.mailer.Send(ctx, msg)
}
