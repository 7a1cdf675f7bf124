package httpadapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/r3lic-pnw/craftagent/internal/adapter/bot/simulated"
	"github.com/r3lic-pnw/craftagent/internal/app/action"
	"github.com/r3lic-pnw/craftagent/internal/app/chat"
	"github.com/r3lic-pnw/craftagent/internal/app/observe"
	"github.com/r3lic-pnw/craftagent/internal/app/status"
	"github.com/r3lic-pnw/craftagent/internal/domain/agent"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func connectedGateway(t *testing.T) *simulated.Gateway {
	t.Helper()
	g := simulated.New(simulated.DefaultConfig())
	if err := g.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	return g
}

func decodeBody(t *testing.T, ctx *app.RequestContext) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(ctx.Response.Body(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, ctx.Response.Body())
	}
	return out
}

func TestActionEmptyBodySkipsClassifier(t *testing.T) {
	h := Handler{ActionUC: action.UseCase{
		Bot: connectedGateway(t),
		Classify: func(string) agent.Intent {
			t.Fatal("classifier must not run without text")
			return agent.Intent{}
		},
		Slot: action.NewSlot(),
	}}
	ctx := &app.RequestContext{}

	h.action(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got)
	}
	body := decodeBody(t, ctx)
	if body["error"] != "No text provided" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if body["status"] != "error" {
		t.Fatalf("unexpected status field: %v", body["status"])
	}
}

func TestActionStopSucceeds(t *testing.T) {
	h := Handler{ActionUC: action.UseCase{
		Bot:  connectedGateway(t),
		Slot: action.NewSlot(),
	}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"text":"stop"}`))

	h.action(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", got, ctx.Response.Body())
	}
	body := decodeBody(t, ctx)
	if body["status"] != "success" {
		t.Fatalf("unexpected status: %v", body["status"])
	}
	if body["action"] != "stop" {
		t.Fatalf("unexpected action: %v", body["action"])
	}
}

func TestActionBotDownReturnsServiceUnavailable(t *testing.T) {
	h := Handler{ActionUC: action.UseCase{
		Bot:  simulated.New(simulated.DefaultConfig()),
		Slot: action.NewSlot(),
	}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"text":"stop"}`))

	h.action(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", got)
	}
	body := decodeBody(t, ctx)
	if body["action"] != "stop" {
		t.Fatalf("error envelope should echo the original text, got %v", body["action"])
	}
}

func TestVisionWrapsSnapshot(t *testing.T) {
	h := Handler{VisionUC: observe.UseCase{Bot: connectedGateway(t)}}
	ctx := &app.RequestContext{}

	h.vision(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", got, ctx.Response.Body())
	}
	body := decodeBody(t, ctx)
	if body["status"] != "success" {
		t.Fatalf("unexpected status: %v", body["status"])
	}
	if _, ok := body["vision"].(map[string]any); !ok {
		t.Fatalf("vision payload missing: %v", body)
	}
}

func TestVisionBotDownReturnsServiceUnavailable(t *testing.T) {
	h := Handler{VisionUC: observe.UseCase{Bot: simulated.New(simulated.DefaultConfig())}}
	ctx := &app.RequestContext{}

	h.vision(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", got)
	}
}

func TestHealthAlwaysAnswers(t *testing.T) {
	h := Handler{HealthUC: status.HealthUseCase{
		Bot:       simulated.New(simulated.DefaultConfig()),
		StartedAt: time.Now().Add(-3 * time.Second),
	}}
	ctx := &app.RequestContext{}

	h.health(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("expected 200, got %d", got)
	}
	body := decodeBody(t, ctx)
	if body["status"] != "degraded" {
		t.Fatalf("disconnected session should report degraded, got %v", body["status"])
	}
}

type fakeChatModel struct {
	reply string
	err   error
}

func (f fakeChatModel) Reply(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

func TestChatReturnsReply(t *testing.T) {
	h := Handler{ChatUC: chat.UseCase{Model: fakeChatModel{reply: "hello there"}}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"text":"hi"}`))

	h.chat(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", got, ctx.Response.Body())
	}
	body := decodeBody(t, ctx)
	if body["reply"] != "hello there" {
		t.Fatalf("unexpected reply: %v", body["reply"])
	}
}

func TestChatWithoutModelReturnsServiceUnavailable(t *testing.T) {
	h := Handler{ChatUC: chat.UseCase{}}
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"text":"hi"}`))

	h.chat(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", got)
	}
}

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{action.ErrNoText, consts.StatusBadRequest},
		{action.ErrBotNotReady, consts.StatusServiceUnavailable},
		{action.ErrActionInProgress, consts.StatusConflict},
		{action.ErrTimeout, consts.StatusGatewayTimeout},
		{action.ErrUnreachable, consts.StatusInternalServerError},
		{observe.ErrBotNotReady, consts.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := statusFromError(tc.err); got != tc.want {
			t.Fatalf("statusFromError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestAPIKeyMiddlewareRejectsWrongKey(t *testing.T) {
	mw := apiKeyMiddleware("secret")
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/action")
	ctx.Request.Header.Set(apiKeyHeader, "wrong")

	mw(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", got)
	}
}

func TestAPIKeyMiddlewareKeepsHealthOpen(t *testing.T) {
	mw := apiKeyMiddleware("secret")
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/health")

	mw(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got == consts.StatusUnauthorized {
		t.Fatalf("health must not require the api key")
	}
}
