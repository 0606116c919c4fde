package controllers

import (
	"errors"
	"log/slog"
	"time"

	json "github.com/bytedance/sonic"
	"github.com/curaious/taskdeck/internal/events"
	"github.com/curaious/taskdeck/internal/perrors"
	"github.com/curaious/taskdeck/internal/workflows"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// RegisterWebhookRoutes wires the identity provider's event delivery endpoint.
// Every delivery is signature-checked before anything is decoded, and the
// delivery id doubles as the workflow id so redeliveries are absorbed by the
// workflow engine rather than re-applied.
func RegisterWebhookRoutes(r *router.Router, verifier *events.SignatureVerifier, dispatcher *workflows.Dispatcher) {
	r.POST("/api/events", func(ctx *fasthttp.RequestCtx) {
		stdCtx := requestContext(ctx)

		deliveryID := string(ctx.Request.Header.Peek("webhook-id"))
		timestamp := string(ctx.Request.Header.Peek("webhook-timestamp"))
		sigHeader := string(ctx.Request.Header.Peek("webhook-signature"))
		body := ctx.PostBody()

		if err := verifier.Verify(deliveryID, timestamp, body, sigHeader, time.Now()); err != nil {
			slog.WarnContext(stdCtx, "Rejected webhook delivery",
				slog.String("delivery_id", deliveryID), slog.Any("error", err))
			writeError(ctx, stdCtx, "Invalid webhook signature", perrors.NewErrUnauthorized("Invalid webhook signature", err))
			return
		}

		var envelope events.Envelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			writeError(ctx, stdCtx, "Invalid event payload", perrors.NewErrInvalidRequest("Invalid event payload", err))
			return
		}

		if err := dispatcher.Dispatch(stdCtx, deliveryID, envelope.Type, envelope.Data); err != nil {
			if errors.Is(err, workflows.ErrUnknownEventType) {
				// Unhandled event types are acknowledged so the provider
				// stops redelivering them.
				slog.InfoContext(stdCtx, "Ignoring unhandled event type", slog.String("type", envelope.Type))
				writeOK(ctx, stdCtx, "Event ignored", nil)
				return
			}
			writeError(ctx, stdCtx, "Failed to process event", perrors.NewErrInternalServerError("Failed to process event", err))
			return
		}

		writeOK(ctx, stdCtx, "Event accepted", nil)
	})
}
