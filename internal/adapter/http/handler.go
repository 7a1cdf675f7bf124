package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/r3lic-pnw/craftagent/internal/app/action"
	"github.com/r3lic-pnw/craftagent/internal/app/chat"
	"github.com/r3lic-pnw/craftagent/internal/app/observe"
	"github.com/r3lic-pnw/craftagent/internal/app/ports"
	"github.com/r3lic-pnw/craftagent/internal/app/status"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route"
)

const defaultActionsLimit = 20

type Handler struct {
	HealthUC status.HealthUseCase
	VisionUC observe.UseCase
	ActionUC action.UseCase
	StatusUC status.UseCase
	ChatUC   chat.UseCase
	Log      ports.ActionLogRepository
	KPI      kpiSnapshotProvider
	APIKey   string
}

// RegisterRoutes mounts the API twice: at the root and under /api, for
// clients that expect either prefix.
func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	s.Use(apiKeyMiddleware(h.APIKey))

	h.mount(s.Group("/"))
	h.mount(s.Group("/api"))
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) mount(g *route.RouterGroup) {
	g.GET("/health", h.health)
	g.GET("/vision", h.vision)
	g.POST("/action", h.action)
	g.POST("/chat", h.chat)
	g.GET("/status", h.status)
	g.GET("/actions", h.actions)
}

func (h Handler) health(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.HealthUC.Execute(c))
}

func (h Handler) vision(c context.Context, ctx *app.RequestContext) {
	snap, err := h.VisionUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"status": "success",
		"vision": snap,
	})
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body action.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid json")
		return
	}

	resp, err := h.ActionUC.Execute(c, body)
	if err != nil {
		ctx.JSON(statusFromError(err), map[string]any{
			"status": "error",
			"error":  err.Error(),
			"action": body.Text,
		})
		return
	}

	ctx.JSON(consts.StatusOK, map[string]any{
		"status":  "success",
		"action":  resp.Kind,
		"message": resp.Message,
		"details": resp.Details,
	})
}

func (h Handler) chat(c context.Context, ctx *app.RequestContext) {
	var body chat.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid json")
		return
	}

	resp, err := h.ChatUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}

	out := map[string]any{
		"status": "success",
		"reply":  resp.Reply,
	}
	if resp.Action != nil {
		out["action"] = resp.Action
	}
	if resp.ActionError != "" {
		out["actionError"] = resp.ActionError
	}
	ctx.JSON(consts.StatusOK, out)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) actions(c context.Context, ctx *app.RequestContext) {
	if h.Log == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "action log not configured")
		return
	}
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit <= 0 {
		limit = defaultActionsLimit
	}
	recs, err := h.Log.Recent(c, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if recs == nil {
		recs = []ports.ActionRecord{}
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"actions": recs,
		"count":   len(recs),
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, action.ErrNoText), errors.Is(err, chat.ErrNoText):
		return consts.StatusBadRequest
	case errors.Is(err, action.ErrBotNotReady),
		errors.Is(err, observe.ErrBotNotReady),
		errors.Is(err, status.ErrBotNotReady),
		errors.Is(err, chat.ErrNotConfigured):
		return consts.StatusServiceUnavailable
	case errors.Is(err, action.ErrActionInProgress):
		return consts.StatusConflict
	case errors.Is(err, action.ErrTimeout):
		return consts.StatusGatewayTimeout
	default:
		return consts.StatusInternalServerError
	}
}

func writeError(ctx *app.RequestContext, err error) {
	writeErrorBody(ctx, statusFromError(err), err.Error())
}

func writeErrorBody(ctx *app.RequestContext, code int, message string) {
	ctx.JSON(code, map[string]any{
		"status": "error",
		"error":  message,
	})
}
