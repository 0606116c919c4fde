package comment

import (
	"context"
	"testing"
	"time"

	"github.com/curaious/taskdeck/internal/services/project"
	"github.com/curaious/taskdeck/internal/services/task"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTasks struct {
	tasks map[uuid.UUID]*task.Task
}

func (f *fakeTasks) GetByID(_ context.Context, id uuid.UUID) (*task.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, task.ErrTaskNotFound
	}
	return t, nil
}

type fakeProjects struct {
	projects map[uuid.UUID]*project.ProjectWithMembers
}

func (f *fakeProjects) GetWithMembers(_ context.Context, id uuid.UUID) (*project.ProjectWithMembers, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	return p, nil
}

type fakeStore struct {
	inserted []*Comment
	listed   []CommentWithAuthor
}

func (f *fakeStore) Insert(_ context.Context, c *Comment) (*Comment, error) {
	saved := *c
	saved.ID = uuid.New()
	saved.CreatedAt = time.Now()
	f.inserted = append(f.inserted, &saved)
	return &saved, nil
}

func (f *fakeStore) ListByTask(_ context.Context, _ uuid.UUID) ([]CommentWithAuthor, error) {
	return f.listed, nil
}

func newFixture() (*CommentService, *fakeStore, uuid.UUID) {
	taskID := uuid.New()
	projectID := uuid.New()

	tasks := &fakeTasks{tasks: map[uuid.UUID]*task.Task{
		taskID: {ID: taskID, ProjectID: projectID, Title: "Ship it"},
	}}
	projects := &fakeProjects{projects: map[uuid.UUID]*project.ProjectWithMembers{
		projectID: {
			Project: project.Project{ID: projectID, Name: "Launch"},
			Members: []project.MemberUser{{UserID: "user_member"}},
		},
	}}
	store := &fakeStore{}

	return NewCommentService(store, tasks, projects), store, taskID
}

func TestAddComment_Member(t *testing.T) {
	svc, store, taskID := newFixture()

	c, err := svc.Add(context.Background(), "user_member", &AddCommentRequest{TaskID: taskID, Content: "on it"})
	require.NoError(t, err)
	assert.Equal(t, "on it", c.Content)
	assert.Equal(t, "user_member", c.UserID)
	require.Len(t, store.inserted, 1)
}

func TestAddComment_NotMember(t *testing.T) {
	svc, store, taskID := newFixture()

	_, err := svc.Add(context.Background(), "user_outsider", &AddCommentRequest{TaskID: taskID, Content: "hi"})
	assert.ErrorIs(t, err, ErrNotProjectMember)
	assert.Empty(t, store.inserted)
}

func TestAddComment_TaskMissing(t *testing.T) {
	svc, store, _ := newFixture()

	_, err := svc.Add(context.Background(), "user_member", &AddCommentRequest{TaskID: uuid.New(), Content: "hi"})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	assert.Empty(t, store.inserted)
}

func TestAddComment_ProjectMissing(t *testing.T) {
	taskID := uuid.New()
	tasks := &fakeTasks{tasks: map[uuid.UUID]*task.Task{
		taskID: {ID: taskID, ProjectID: uuid.New()},
	}}
	svc := NewCommentService(&fakeStore{}, tasks, &fakeProjects{projects: map[uuid.UUID]*project.ProjectWithMembers{}})

	_, err := svc.Add(context.Background(), "user_member", &AddCommentRequest{TaskID: taskID, Content: "hi"})
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestListComments_NewestFirst(t *testing.T) {
	svc, store, taskID := newFixture()

	now := time.Now()
	store.listed = []CommentWithAuthor{
		{Comment: Comment{Content: "newest", CreatedAt: now}},
		{Comment: Comment{Content: "older", CreatedAt: now.Add(-time.Hour)}},
	}

	first, err := svc.List(context.Background(), taskID)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "newest", first[0].Content)

	// repeated calls with no writes return the same ordered results
	second, err := svc.List(context.Background(), taskID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
