package router

import (
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"github.com/valyala/fasthttp/pprofhandler"

	apiHandler "github.com/fastygo/taskboard/api/handler"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// Options toggles the diagnostic routes. A nil Metrics gatherer disables /metrics.
type Options struct {
	Metrics prometheus.Gatherer
	Pprof   bool
}

func New(handlers Handlers, sessionMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler, opts Options) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	if opts.Metrics != nil {
		r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(opts.Metrics, promhttp.HandlerOpts{})))
	}
	if opts.Pprof {
		r.GET("/debug/pprof/{profile:*}", pprofhandler.PprofHandler)
	}

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/logout", handlers.Auth.Logout)
	r.GET("/api/v1/auth/me", handlers.Auth.Me)

	// Session routes
	r.GET("/api/v1/tasks", sessionMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", sessionMiddleware(handlers.Task.CreateTask))
	r.POST("/api/v1/tasks/demo", sessionMiddleware(handlers.Task.GenerateDemo))
	r.GET("/api/v1/tasks/{id}", sessionMiddleware(handlers.Task.GetTask))
	r.PUT("/api/v1/tasks/{id}", sessionMiddleware(handlers.Task.UpdateTask))
	r.DELETE("/api/v1/tasks/{id}", sessionMiddleware(handlers.Task.DeleteTask))

	return r
}
