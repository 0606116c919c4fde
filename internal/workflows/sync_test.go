package workflows

import (
	"testing"

	"github.com/curaious/taskdeck/internal/events"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
)

func newSyncEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *Activities) {
	t.Helper()

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	a := NewActivities(nil, nil)
	env.RegisterActivity(a)
	return env, a
}

func TestSyncUserUpsertWorkflow(t *testing.T) {
	env, a := newSyncEnv(t)

	data := events.UserData{
		ID:             "user_123",
		EmailAddresses: []events.EmailAddress{{EmailAddress: "ada@example.com"}},
		FirstName:      "Ada",
		LastName:       "Lovelace",
	}
	env.OnActivity(a.UpsertUser, mock.Anything, data).Return(nil).Once()

	env.ExecuteWorkflow(SyncUserUpsertWorkflow, data)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	env.AssertExpectations(t)
}

func TestSyncWorkspaceCreateWorkflow(t *testing.T) {
	env, a := newSyncEnv(t)

	data := events.OrganizationData{ID: "org_1", Name: "Acme", Slug: "acme", CreatedBy: "user_123"}
	env.OnActivity(a.CreateWorkspace, mock.Anything, data).Return(nil).Once()

	env.ExecuteWorkflow(SyncWorkspaceCreateWorkflow, data)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	env.AssertExpectations(t)
}

func TestSyncMembershipCreateWorkflow(t *testing.T) {
	env, a := newSyncEnv(t)

	data := events.InvitationData{OrganizationID: "org_1", UserID: "user_456", RoleName: "member"}
	env.OnActivity(a.AddWorkspaceMember, mock.Anything, data).Return(nil).Once()

	env.ExecuteWorkflow(SyncMembershipCreateWorkflow, data)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	env.AssertExpectations(t)
}

func TestSyncUserDeleteWorkflow(t *testing.T) {
	env, a := newSyncEnv(t)

	env.OnActivity(a.DeleteUser, mock.Anything, "user_123").Return(nil).Once()

	env.ExecuteWorkflow(SyncUserDeleteWorkflow, events.UserData{ID: "user_123"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	env.AssertExpectations(t)
}
