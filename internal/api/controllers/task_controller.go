package controllers

import (
	"errors"
	"log/slog"

	json "github.com/bytedance/sonic"
	"github.com/curaious/taskdeck/internal/events"
	"github.com/curaious/taskdeck/internal/perrors"
	"github.com/curaious/taskdeck/internal/services"
	task2 "github.com/curaious/taskdeck/internal/services/task"
	"github.com/curaious/taskdeck/internal/workflows"
	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

func RegisterTaskRoutes(r *router.Router, svc *services.Services, dispatcher *workflows.Dispatcher) {
	// Create task; an assigned task starts the notification workflow
	r.POST("/api/tasks", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		var body task2.CreateTaskRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Title == "" {
			writeError(ctx, stdCtx, "Title is required", perrors.NewErrInvalidRequest("Title is required", errors.New("title is required")))
			return
		}

		created, err := svc.Task.Create(stdCtx, &body)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to create task", perrors.NewErrInternalServerError("Failed to create task", err))
			return
		}

		if created.AssigneeID != nil {
			emitTaskAssigned(ctx, dispatcher, created.ID)
		}

		writeOK(ctx, stdCtx, "Task created successfully", created)
	})

	// List tasks in a project
	r.GET("/api/tasks", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		projectID, err := requireUUIDQuery(ctx, "project_id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid project id", perrors.NewErrInvalidRequest("Invalid project id", err))
			return
		}

		tasks, err := svc.Task.ListByProject(stdCtx, projectID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list tasks", perrors.NewErrInternalServerError("Failed to list tasks", err))
			return
		}

		writeOK(ctx, stdCtx, "Tasks retrieved successfully", tasks)
	})

	// Get task by id
	r.GET("/api/tasks/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		t, err := svc.Task.GetByID(stdCtx, id)
		if err != nil {
			switch {
			case errors.Is(err, task2.ErrTaskNotFound):
				writeError(ctx, stdCtx, "Task not found", perrors.NewErrNotFound("Task not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get task", perrors.NewErrInternalServerError("Failed to get task", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Task retrieved successfully", t)
	})

	// Update task; a new assignee starts the notification workflow
	r.PUT("/api/tasks/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body task2.UpdateTaskRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		updated, err := svc.Task.Update(stdCtx, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, task2.ErrTaskNotFound):
				writeError(ctx, stdCtx, "Task not found", perrors.NewErrNotFound("Task not found", err))
			case errors.Is(err, task2.ErrInvalidStatus):
				writeError(ctx, stdCtx, "Invalid task status", perrors.NewErrInvalidRequest("Invalid task status", err))
			default:
				writeError(ctx, stdCtx, "Failed to update task", perrors.NewErrInternalServerError("Failed to update task", err))
			}
			return
		}

		if body.AssigneeID != nil && updated.AssigneeID != nil {
			emitTaskAssigned(ctx, dispatcher, updated.ID)
		}

		writeOK(ctx, stdCtx, "Task updated successfully", updated)
	})

	// Delete task
	r.DELETE("/api/tasks/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.Task.Delete(stdCtx, id); err != nil {
			switch {
			case errors.Is(err, task2.ErrTaskNotFound):
				writeError(ctx, stdCtx, "Task not found", perrors.NewErrNotFound("Task not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete task", perrors.NewErrInternalServerError("Failed to delete task", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Task deleted successfully", nil)
	})
}

// emitTaskAssigned starts the notification workflow for a task. The workflow
// fails open: an unreachable workflow engine does not fail the API request.
func emitTaskAssigned(ctx *fasthttp.RequestCtx, dispatcher *workflows.Dispatcher, taskID uuid.UUID) {
	stdCtx := requestContext(ctx)

	payload, err := json.Marshal(events.TaskAssignedData{
		TaskID: taskID.String(),
		Origin: string(ctx.Request.Header.Peek("Origin")),
	})
	if err != nil {
		slog.ErrorContext(stdCtx, "Failed to encode task.assigned event", slog.Any("error", err))
		return
	}

	if err := dispatcher.Dispatch(stdCtx, uuid.NewString(), events.TaskAssigned, payload); err != nil {
		slog.ErrorContext(stdCtx, "Failed to start task assignment workflow",
			slog.String("task_id", taskID.String()), slog.Any("error", err))
	}
}
