package services

import (
	"github.com/curaious/taskdeck/internal/config"
	"github.com/curaious/taskdeck/internal/db"
	comment2 "github.com/curaious/taskdeck/internal/services/comment"
	project2 "github.com/curaious/taskdeck/internal/services/project"
	task2 "github.com/curaious/taskdeck/internal/services/task"
	user2 "github.com/curaious/taskdeck/internal/services/user"
	workspace2 "github.com/curaious/taskdeck/internal/services/workspace"
)

type Services struct {
	User      *user2.UserService
	Workspace *workspace2.WorkspaceService
	Project   *project2.ProjectService
	Task      *task2.TaskService
	Comment   *comment2.CommentService
}

func NewServices(conf *config.Config) *Services {
	dbconn := db.NewConn(conf)

	taskSvc := task2.NewTaskService(task2.NewTaskRepo(dbconn))
	projectSvc := project2.NewProjectService(project2.NewProjectRepo(dbconn))

	return &Services{
		User:      user2.NewUserService(user2.NewUserRepo(dbconn)),
		Workspace: workspace2.NewWorkspaceService(workspace2.NewWorkspaceRepo(dbconn)),
		Project:   projectSvc,
		Task:      taskSvc,
		Comment:   comment2.NewCommentService(comment2.NewCommentRepo(dbconn), taskSvc, projectSvc),
	}
}
