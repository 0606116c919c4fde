package workflows

import (
	"testing"
	"time"

	"github.com/curaious/taskdeck/internal/events"
	"github.com/curaious/taskdeck/internal/services/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"
)

type NotificationWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env *testsuite.TestWorkflowEnvironment
	a   *Activities
}

func (s *NotificationWorkflowTestSuite) SetupTest() {
	s.env = s.NewTestWorkflowEnvironment()
	s.env.SetStartTime(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	s.a = NewActivities(nil, nil)
	s.env.RegisterActivity(s.a)
}

func (s *NotificationWorkflowTestSuite) AfterTest(suiteName, testName string) {
	s.env.AssertExpectations(s.T())
}

func notifTask(due time.Time, status task.Status) *task.TaskForNotification {
	return &task.TaskForNotification{
		Task:          task.Task{Title: "Write release notes", Status: status, DueDate: due},
		AssigneeName:  "Ada",
		AssigneeEmail: "ada@example.com",
		ProjectName:   "Launch",
	}
}

func (s *NotificationWorkflowTestSuite) TestDueToday_NoReminder() {
	due := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(notifTask(due, task.StatusTodo), nil).Once()
	s.env.OnActivity(s.a.SendAssignmentEmail, mock.Anything, mock.Anything).
		Return(nil).Once()

	s.env.ExecuteWorkflow(TaskAssignmentWorkflow, events.TaskAssignedData{TaskID: "task-1", Origin: "http://localhost:5173"})

	require.True(s.T(), s.env.IsWorkflowCompleted())
	require.NoError(s.T(), s.env.GetWorkflowError())
	s.env.AssertNotCalled(s.T(), "SendReminderEmail", mock.Anything, mock.Anything)
}

func (s *NotificationWorkflowTestSuite) TestFutureDue_ReminderWhenStillOpen() {
	due := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(notifTask(due, task.StatusTodo), nil).Once()
	s.env.OnActivity(s.a.SendAssignmentEmail, mock.Anything, mock.MatchedBy(func(in TaskEmailInput) bool {
		return in.To == "ada@example.com" && in.ProjectName == "Launch"
	})).Return(nil).Once()
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(notifTask(due, task.StatusInProgress), nil).Once()
	s.env.OnActivity(s.a.SendReminderEmail, mock.Anything, mock.MatchedBy(func(in TaskEmailInput) bool {
		return in.To == "ada@example.com"
	})).Return(nil).Once()

	s.env.ExecuteWorkflow(TaskAssignmentWorkflow, events.TaskAssignedData{TaskID: "task-1"})

	require.True(s.T(), s.env.IsWorkflowCompleted())
	require.NoError(s.T(), s.env.GetWorkflowError())
}

func (s *NotificationWorkflowTestSuite) TestFutureDue_NoReminderWhenDone() {
	due := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(notifTask(due, task.StatusTodo), nil).Once()
	s.env.OnActivity(s.a.SendAssignmentEmail, mock.Anything, mock.Anything).
		Return(nil).Once()
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(notifTask(due, task.StatusDone), nil).Once()

	s.env.ExecuteWorkflow(TaskAssignmentWorkflow, events.TaskAssignedData{TaskID: "task-1"})

	require.True(s.T(), s.env.IsWorkflowCompleted())
	require.NoError(s.T(), s.env.GetWorkflowError())
	s.env.AssertNotCalled(s.T(), "SendReminderEmail", mock.Anything, mock.Anything)
}

func (s *NotificationWorkflowTestSuite) TestDeletedDuringWait_EndsSilently() {
	due := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(notifTask(due, task.StatusTodo), nil).Once()
	s.env.OnActivity(s.a.SendAssignmentEmail, mock.Anything, mock.Anything).
		Return(nil).Once()
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(nil, nil).Once()

	s.env.ExecuteWorkflow(TaskAssignmentWorkflow, events.TaskAssignedData{TaskID: "task-1"})

	require.True(s.T(), s.env.IsWorkflowCompleted())
	require.NoError(s.T(), s.env.GetWorkflowError())
	s.env.AssertNotCalled(s.T(), "SendReminderEmail", mock.Anything, mock.Anything)
}

func (s *NotificationWorkflowTestSuite) TestDeletedBeforeStart_NoEmails() {
	s.env.OnActivity(s.a.GetTaskForNotification, mock.Anything, "task-1").
		Return(nil, nil).Once()

	s.env.ExecuteWorkflow(TaskAssignmentWorkflow, events.TaskAssignedData{TaskID: "task-1"})

	require.True(s.T(), s.env.IsWorkflowCompleted())
	require.NoError(s.T(), s.env.GetWorkflowError())
	s.env.AssertNotCalled(s.T(), "SendAssignmentEmail", mock.Anything, mock.Anything)
	s.env.AssertNotCalled(s.T(), "SendReminderEmail", mock.Anything, mock.Anything)
}

func TestNotificationWorkflow(t *testing.T) {
	suite.Run(t, new(NotificationWorkflowTestSuite))
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	night := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)

	assert.True(t, sameCalendarDay(morning, night))
	assert.False(t, sameCalendarDay(night, nextDay))
}
