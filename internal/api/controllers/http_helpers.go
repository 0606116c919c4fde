package controllers

import (
	"context"
	"errors"
	"fmt"

	json "github.com/bytedance/sonic"
	"github.com/curaious/taskdeck/internal/api/response"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// requestContext returns the context for downstream calls: the propagated
// trace context when the middleware extracted one, Background otherwise.
func requestContext(ctx *fasthttp.RequestCtx) context.Context {
	if traceCtx, ok := ctx.UserValue("traceCtx").(context.Context); ok {
		return traceCtx
	}
	return context.Background()
}

// authUserID returns the authenticated user id placed by the auth middleware.
func authUserID(ctx *fasthttp.RequestCtx) (string, error) {
	id, _ := ctx.UserValue("authUserID").(string)
	if id == "" {
		return "", errors.New("no authenticated user in request")
	}
	return id, nil
}

func parseBody(ctx *fasthttp.RequestCtx, target any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return errors.New("request body is empty")
	}

	return json.Unmarshal(body, target)
}

func writeError(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, err error) {
	response.NewResponse[any](stdCtx, message, nil).WithError(err).Write(ctx)
}

func writeOK(ctx *fasthttp.RequestCtx, stdCtx context.Context, message string, data any) {
	response.NewResponse(stdCtx, message, data).Write(ctx)
}

func pathParam(ctx *fasthttp.RequestCtx, key string) (string, error) {
	val := ctx.UserValue(key)
	if val == nil {
		return "", fmt.Errorf("%s is required", key)
	}

	return fmt.Sprint(val), nil
}

func pathParamUUID(ctx *fasthttp.RequestCtx, key string) (uuid.UUID, error) {
	val, err := pathParam(ctx, key)
	if err != nil {
		return uuid.Nil, err
	}

	return uuid.Parse(val)
}

func requireStringQuery(ctx *fasthttp.RequestCtx, key string) (string, error) {
	raw := ctx.QueryArgs().Peek(key)
	if len(raw) == 0 {
		return "", fmt.Errorf("%s parameter is required", key)
	}

	return string(raw), nil
}

func requireUUIDQuery(ctx *fasthttp.RequestCtx, key string) (uuid.UUID, error) {
	raw := ctx.QueryArgs().Peek(key)
	if len(raw) == 0 {
		return uuid.Nil, fmt.Errorf("%s parameter is required", key)
	}

	return uuid.ParseBytes(raw)
}
