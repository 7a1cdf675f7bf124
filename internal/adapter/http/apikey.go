package httpadapter

import (
	"context"
	"crypto/subtle"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const apiKeyHeader = "X-API-Key"

// apiKeyMiddleware rejects requests that lack the configured key. An
// empty key disables the check; /health stays open either way so
// probes work unauthenticated.
func apiKeyMiddleware(key string) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if key == "" || isHealthPath(string(ctx.Path())) {
			ctx.Next(c)
			return
		}
		got := ctx.GetHeader(apiKeyHeader)
		if subtle.ConstantTimeCompare(got, []byte(key)) != 1 {
			writeErrorBody(ctx, consts.StatusUnauthorized, "invalid api key")
			ctx.Abort()
			return
		}
		ctx.Next(c)
	}
}

func isHealthPath(path string) bool {
	return path == "/health" || path == "/api/health"
}
