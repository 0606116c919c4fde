package workflows

import (
	"time"

	"github.com/curaious/taskdeck/internal/events"
	"github.com/curaious/taskdeck/internal/services/task"
	"go.temporal.io/sdk/workflow"
)

// TaskAssignmentWorkflow mails the assignee right away, then waits durably
// until the task's due date and sends a reminder if the task is still open.
//
// The wait is a Temporal timer, so the workflow survives worker restarts
// spanning the whole interval. Reassignment or deletion during the wait is
// resolved by re-fetching at fire time: a deleted task ends the workflow
// silently, and the reminder goes to whoever holds the task then.
func TaskAssignmentWorkflow(ctx workflow.Context, in events.TaskAssignedData) error {
	ctx = workflow.WithActivityOptions(ctx, defaultActivityOptions())
	var a *Activities

	var t *task.TaskForNotification
	if err := workflow.ExecuteActivity(ctx, a.GetTaskForNotification, in.TaskID).Get(ctx, &t); err != nil {
		return err
	}
	if t == nil {
		return nil
	}

	if err := workflow.ExecuteActivity(ctx, a.SendAssignmentEmail, emailInput(t, in.Origin)).Get(ctx, nil); err != nil {
		return err
	}

	// Due today means the assignment email already doubles as the reminder.
	now := workflow.Now(ctx).UTC()
	if sameCalendarDay(now, t.DueDate.UTC()) {
		return nil
	}

	if wait := t.DueDate.Sub(now); wait > 0 {
		if err := workflow.Sleep(ctx, wait); err != nil {
			return err
		}
	}

	var current *task.TaskForNotification
	if err := workflow.ExecuteActivity(ctx, a.GetTaskForNotification, in.TaskID).Get(ctx, &current); err != nil {
		return err
	}
	if current == nil || current.Status == task.StatusDone {
		return nil
	}

	return workflow.ExecuteActivity(ctx, a.SendReminderEmail, emailInput(current, in.Origin)).Get(ctx, nil)
}

func emailInput(t *task.TaskForNotification, origin string) TaskEmailInput {
	return TaskEmailInput{
		To:           t.AssigneeEmail,
		AssigneeName: t.AssigneeName,
		ProjectName:  t.ProjectName,
		Title:        t.Title,
		DueDate:      t.DueDate,
		Origin:       origin,
	}
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
