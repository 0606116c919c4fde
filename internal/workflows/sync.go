package workflows

import (
	"time"

	"github.com/curaious/taskdeck/internal/events"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// Each identity-provider event gets its own workflow wrapping a single
// idempotent activity, so the platform owns retries and a replayed delivery
// cannot corrupt state.

func defaultActivityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumAttempts:    5,
		},
	}
}

func SyncUserUpsertWorkflow(ctx workflow.Context, data events.UserData) error {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities
	return workflow.ExecuteActivity(ctx, a.UpsertUser, data).Get(ctx, nil)
}

func SyncUserDeleteWorkflow(ctx workflow.Context, data events.UserData) error {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities
	return workflow.ExecuteActivity(ctx, a.DeleteUser, data.ID).Get(ctx, nil)
}

func SyncWorkspaceCreateWorkflow(ctx workflow.Context, data events.OrganizationData) error {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities
	return workflow.ExecuteActivity(ctx, a.CreateWorkspace, data).Get(ctx, nil)
}

func SyncWorkspaceUpdateWorkflow(ctx workflow.Context, data events.OrganizationData) error {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities
	return workflow.ExecuteActivity(ctx, a.UpdateWorkspace, data).Get(ctx, nil)
}

func SyncWorkspaceDeleteWorkflow(ctx workflow.Context, data events.OrganizationData) error {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities
	return workflow.ExecuteActivity(ctx, a.DeleteWorkspace, data.ID).Get(ctx, nil)
}

func SyncMembershipCreateWorkflow(ctx workflow.Context, data events.InvitationData) error {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities
	return workflow.ExecuteActivity(ctx, a.AddWorkspaceMember, data).Get(ctx, nil)
}
