package controllers

import (
	"errors"

	"github.com/curaious/taskdeck/internal/perrors"
	"github.com/curaious/taskdeck/internal/services"
	workspace2 "github.com/curaious/taskdeck/internal/services/workspace"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// Workspaces are created and mutated by identity-provider webhooks, so the
// HTTP surface is read-only.
func RegisterWorkspaceRoutes(r *router.Router, svc *services.Services) {
	// List the caller's workspaces
	r.GET("/api/workspaces", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		userID, err := authUserID(ctx)
		if err != nil {
			writeError(ctx, stdCtx, "Not authenticated", perrors.NewErrUnauthorized("Not authenticated", err))
			return
		}

		workspaces, err := svc.Workspace.ListForUser(stdCtx, userID)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list workspaces", perrors.NewErrInternalServerError("Failed to list workspaces", err))
			return
		}

		writeOK(ctx, stdCtx, "Workspaces retrieved successfully", workspaces)
	})

	// Get workspace by id
	r.GET("/api/workspaces/{id}", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParam(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Workspace id is required", perrors.NewErrInvalidRequest("Workspace id is required", err))
			return
		}

		w, err := svc.Workspace.GetByID(stdCtx, id)
		if err != nil {
			switch {
			case errors.Is(err, workspace2.ErrWorkspaceNotFound):
				writeError(ctx, stdCtx, "Workspace not found", perrors.NewErrNotFound("Workspace not found", err))
			default:
				writeError(ctx, stdCtx, "Failed to get workspace", perrors.NewErrInternalServerError("Failed to get workspace", err))
			}
			return
		}

		writeOK(ctx, stdCtx, "Workspace retrieved successfully", w)
	})

	// List workspace members
	r.GET("/api/workspaces/{id}/members", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)
		id, err := pathParam(ctx, "id")
		if err != nil {
			writeError(ctx, stdCtx, "Workspace id is required", perrors.NewErrInvalidRequest("Workspace id is required", err))
			return
		}

		members, err := svc.Workspace.ListMembers(stdCtx, id)
		if err != nil {
			writeError(ctx, stdCtx, "Failed to list workspace members", perrors.NewErrInternalServerError("Failed to list workspace members", err))
			return
		}

		writeOK(ctx, stdCtx, "Workspace members retrieved successfully", members)
	})
}
