package controllers

import (
	"errors"

	"github.com/curaious/taskdeck/internal/perrors"
	"github.com/curaious/taskdeck/internal/services"
	comment2 "github.com/curaious/taskdeck/internal/services/comment"
	"github.com/curaious/taskdeck/internal/services/project"
	task2 "github.com/curaious/taskdeck/internal/services/task"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

func RegisterCommentRoutes(r *router.Router, svc *services.Services) {
	// Add comment to a task
	r.POST("/api/comments", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		userID, err := authUserID(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Not authenticated", perrors.NewErrUnauthorized("Not authenticated", err))
			return
		}

		var body comment2.AddCommentRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Content == "" {
			writeError(ctx, stdCtx, "Content is required", perrors.NewErrInvalidRequest("Content is required", errors.New("content is required")))
			return
		}

		created, err := svc.Comment.Add(stdCtx, userID, &body)
		if err != nil {
			switch {
			case errors.Is(err, task2.ErrTaskNotFound):
				writeError(ctx, stdCtx, "Task not found", perrors.NewErrNotFound("Task not found", err))
			case errors.Is(err, project.ErrProjectNotFound):
				writeError(ctx, stdCtx, "Project not found", perrors.NewErrNotFound("Project not found", err))
			case errors.Is(err, comment2.ErrNotProjectMember):
				writeError(ctx, stdCtx, "You do not have permission to comment on this task", perrors.NewErrForbidden("You do not have permission to comment on this task", err))
			default:
				writeError(ctx, stdCtx, "Failed to add comment", perrors.NewErrInternalServerError("Failed to add comment", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Comment added successfully", created)
	})

	// List task comments, newest first
	r.GET("/api/comments", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		taskID, err := requireUUIDQuery(ctx, "task_id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid task id", perrors.NewErrInvalidRequest("Invalid task id", err))
			return
		}

		comments, err := svc.Comment.List(stdCtx, taskID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list comments", perrors.NewErrInternalServerError("Failed to list comments", err))
			return
		}

		writeOK(ctx, stdCtx, "Comments retrieved successfully", comments)
	})
}
