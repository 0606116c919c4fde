package controllers

import (
	"errors"

	"github.com/curaious/taskdeck/internal/perrors"
	"github.com/curaious/taskdeck/internal/services"
	project2 "github.com/curaious/taskdeck/internal/services/project"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

func RegisterProjectRoutes(r *router.Router, svc *services.Services) {
	// Create project
	r.POST("/api/projects", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		userID, err := authUserID(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Not authenticated", perrors.NewErrUnauthorized("Not authenticated", err))
			return
		}

		var body project2.CreateProjectRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Name == "" {
			writeError(ctx, stdCtx, "Name is required", perrors.NewErrInvalidRequest("Name is required", errors.New("name is required")))
			return
		}

		member, err := svc.Workspace.IsMember(stdCtx, body.WorkspaceID, userID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to create project", perrors.NewErrInternalServerError("Failed to create project", err))
			return
		}
		if !member {
			writeError(ctx, stdCtx, "You are not a member of this workspace", perrors.NewErrForbidden("You are not a member of this workspace", errors.New("not a workspace member")))
			return
		}

		created, err := svc.Project.Create(stdCtx, &body, userID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to create project", perrors.NewErrInternalServerError("Failed to create project", err))
			return
		}

		writeOK(ctx, stdCtx, "Project created successfully", created)
	})

	// List projects in a workspace
	r.GET("/api/projects", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		workspaceID, err := requireStringQuery(ctx, "workspace_id")
		if err != nil {
			writeError(ctx, stdCtx, "Workspace id is required", perrors.NewErrInvalidRequest("Workspace id is required", err))
			return
		}

		projects, err := svc.Project.ListByWorkspace(stdCtx, workspaceID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list projects", perrors.NewErrInternalServerError("Failed to list projects", err))
			return
		}

		writeOK(ctx, stdCtx, "Projects retrieved successfully", projects)
	})

	// Get project with members
	r.GET("/api/projects/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		p, err := svc.Project.GetWithMembers(stdCtx, id)
		if err != nil {
			switch {
			case errors.Is(err, project2.ErrProjectNotFound):
				writeError(ctx, stdCtx, "Project not found", perrors.NewErrNotFound("Project not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get project", perrors.NewErrInternalServerError("Failed to get project", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Project retrieved successfully", p)
	})

	// Update project
	r.PUT("/api/projects/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body project2.UpdateProjectRequest
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.Name != nil && *body.Name == "" {
			writeError(ctx, stdCtx, "Name cannot be empty", perrors.NewErrInvalidRequest("Name cannot be empty", errors.New("name cannot be empty")))
			return
		}

		updated, err := svc.Project.Update(stdCtx, id, &body)
		if err != nil {
			switch {
			case errors.Is(err, project2.ErrProjectNotFound):
				writeError(ctx, stdCtx, "Project not found", perrors.NewErrNotFound("Project not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to update project", perrors.NewErrInternalServerError("Failed to update project", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Project updated successfully", updated)
	})

	// Delete project
	r.DELETE("/api/projects/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		if err := svc.Project.Delete(stdCtx, id); err != nil {
			switch {
			case errors.Is(err, project2.ErrProjectNotFound):
				writeError(ctx, stdCtx, "Project not found", perrors.NewErrNotFound("Project not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to delete project", perrors.NewErrInternalServerError("Failed to delete project", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Project deleted successfully", nil)
	})

	// Add project member
	r.POST("/api/projects/{id}/members", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParamUUID(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Invalid ID format", perrors.NewErrInvalidRequest("Invalid ID format", err))
			return
		}

		var body struct {
			UserID string `json:"user_id"`
		}
		if err := parseBody(ctx, &body); err != nil {
			writeError(ctx, stdCtx, "Invalid request body", perrors.NewErrInvalidRequest("Invalid request body", err))
			return
		}

		if body.UserID == "" {
			writeError(ctx, stdCtx, "User id is required", perrors.NewErrInvalidRequest("User id is required", errors.New("user_id is required")))
			return
		}

		if err := svc.Project.AddMember(stdCtx, id, body.UserID); err != nil {
			writeError(ctx, stdCtx, "Failed to add project member", perrors.NewErrInternalServerError("Failed to add project member", err))
			return
		}

		writeOK(ctx, stdCtx, "Project member added successfully", nil)
	})
}
