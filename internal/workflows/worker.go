package workflows

import (
	"go.temporal.io/sdk/worker"
)

// Register binds every workflow and the activity set to the worker.
func Register(w worker.Worker, a *Activities) {
	w.RegisterWorkflow(SyncUserUpsertWorkflow)
	w.RegisterWorkflow(SyncUserDeleteWorkflow)
	w.RegisterWorkflow(SyncWorkspaceCreateWorkflow)
	w.RegisterWorkflow(SyncWorkspaceUpdateWorkflow)
	w.RegisterWorkflow(SyncWorkspaceDeleteWorkflow)
	w.RegisterWorkflow(SyncMembershipCreateWorkflow)
	w.RegisterWorkflow(TaskAssignmentWorkflow)
	w.RegisterActivity(a)
}
