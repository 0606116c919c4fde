package workflows

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	json "github.com/bytedance/sonic"
	"github.com/curaious/taskdeck/internal/events"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
)

// TaskQueue is the queue both the dispatcher and the worker bind to.
const TaskQueue = "taskdeck-events"

var ErrUnknownEventType = errors.New("unknown event type")

// Dispatcher turns inbound events into workflow executions. The workflow ID is
// derived from the delivery ID, and duplicate IDs are rejected, so the
// at-least-once webhook contract cannot run a sync twice.
type Dispatcher struct {
	client client.Client
}

func NewDispatcher(c client.Client) *Dispatcher {
	return &Dispatcher{client: c}
}

// Dispatch starts the workflow registered for eventType with the decoded data
// payload. A redelivered event (same delivery ID) is logged and dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, deliveryID, eventType string, data []byte) error {
	var (
		wf      any
		payload any
	)

	switch eventType {
	case events.UserCreated, events.UserUpdated:
		wf, payload = SyncUserUpsertWorkflow, &events.UserData{}
	case events.UserDeleted:
		wf, payload = SyncUserDeleteWorkflow, &events.UserData{}
	case events.OrganizationCreated:
		wf, payload = SyncWorkspaceCreateWorkflow, &events.OrganizationData{}
	case events.OrganizationUpdated:
		wf, payload = SyncWorkspaceUpdateWorkflow, &events.OrganizationData{}
	case events.OrganizationDeleted:
		wf, payload = SyncWorkspaceDeleteWorkflow, &events.OrganizationData{}
	case events.InvitationAccepted:
		wf, payload = SyncMembershipCreateWorkflow, &events.InvitationData{}
	case events.TaskAssigned:
		wf, payload = TaskAssignmentWorkflow, &events.TaskAssignedData{}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEventType, eventType)
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return fmt.Errorf("failed to decode %s payload: %w", eventType, err)
	}

	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("%s/%s", eventType, deliveryID),
		TaskQueue:             TaskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE,
	}

	_, err := d.client.ExecuteWorkflow(ctx, options, wf, payload)
	var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
	if errors.As(err, &alreadyStarted) {
		slog.InfoContext(ctx, "Dropping redelivered event",
			slog.String("event_type", eventType), slog.String("delivery_id", deliveryID))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to start %s workflow: %w", eventType, err)
	}

	return nil
}
