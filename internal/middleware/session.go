package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/api/transport"
	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/pkg/httpcontext"
	appLogger "github.com/fastygo/taskboard/pkg/logger"
)

const sessionCheckTimeout = 2 * time.Second

// SessionChecker reports the user behind the active session.
type SessionChecker interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// RequireSession answers 401 unless a session is active. The check runs in the
// request context built by adapter, so it carries the request ID.
func RequireSession(sessions SessionChecker, adapter *httpcontext.Adapter, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if adapter == nil {
		adapter = httpcontext.NewAdapter(sessionCheckTimeout)
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			checkCtx, cancel := adapter.Attach(ctx)
			user, err := sessions.CurrentUser(checkCtx)
			cancel()
			if err != nil || user == nil {
				appLogger.WithRequestID(checkCtx, logger).Debug("request without session",
					zap.String("path", string(ctx.Path())), zap.Error(err))
				reject(ctx)
				return
			}
			next(ctx)
		}
	}
}

func reject(ctx *fasthttp.RequestCtx) {
	body, _ := json.Marshal(transport.NewError(string(domain.ErrCodeUnauthorized), domain.ErrUnauthenticated.Error(), nil))
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	ctx.SetBody(body)
}
