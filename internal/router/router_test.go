package router

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/taskboard/api/handler"
	"github.com/fastygo/taskboard/datastore"
	"github.com/fastygo/taskboard/internal/infrastructure/monitor"
	"github.com/fastygo/taskboard/internal/middleware"
	"github.com/fastygo/taskboard/pkg/metrics"
	"github.com/fastygo/taskboard/repository/memory"
	"github.com/fastygo/taskboard/usecase"
	authUC "github.com/fastygo/taskboard/usecase/auth"
	taskUC "github.com/fastygo/taskboard/usecase/task"
)

func newHandler(t *testing.T, opts Options, reg prometheus.Registerer) fasthttp.RequestHandler {
	t.Helper()
	blobs := memory.NewBlobStore()
	store := datastore.New(blobs, nil, datastore.Config{})
	require.NoError(t, store.Initialize(context.Background()))

	m := metrics.New(reg)
	d := usecase.NewDispatcher(nil, m)
	authUseCase := authUC.New(store, d, nil)

	mon := monitor.New(blobs, "memory", time.Hour, nil)
	mon.Refresh()

	r := New(Handlers{
		Auth:   apiHandler.NewAuthHandler(authUseCase, nil, nil),
		Task:   apiHandler.NewTaskHandler(taskUC.New(store, d, m, nil), nil, nil),
		Health: apiHandler.NewHealthHandler(mon, nil, nil),
	}, middleware.RequireSession(authUseCase, nil, nil), opts)
	return r.Handler
}

func serve(h fasthttp.RequestHandler, method, uri, body string) *fasthttp.RequestCtx {
	var rc fasthttp.RequestCtx
	rc.Request.Header.SetMethod(method)
	rc.Request.SetRequestURI(uri)
	if body != "" {
		rc.Request.SetBodyString(body)
	}
	h(&rc)
	return &rc
}

func TestRouter_TaskRoutesRequireSession(t *testing.T) {
	h := newHandler(t, Options{}, nil)

	for _, route := range []struct{ method, uri string }{
		{http.MethodGet, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks"},
		{http.MethodPost, "/api/v1/tasks/demo"},
		{http.MethodGet, "/api/v1/tasks/abc"},
		{http.MethodPut, "/api/v1/tasks/abc"},
		{http.MethodDelete, "/api/v1/tasks/abc"},
	} {
		rc := serve(h, route.method, route.uri, "")
		assert.Equal(t, http.StatusUnauthorized, rc.Response.StatusCode(), route.method+" "+route.uri)
	}
}

func TestRouter_LoginThenList(t *testing.T) {
	h := newHandler(t, Options{}, nil)

	rc := serve(h, http.MethodPost, "/api/v1/auth/login", `{"username":"demo","password":"password123"}`)
	require.Equal(t, http.StatusOK, rc.Response.StatusCode())

	rc = serve(h, http.MethodPost, "/api/v1/tasks/demo", "")
	require.Equal(t, http.StatusCreated, rc.Response.StatusCode())

	rc = serve(h, http.MethodGet, "/api/v1/tasks?limit=2", "")
	assert.Equal(t, http.StatusOK, rc.Response.StatusCode())
	assert.Contains(t, string(rc.Response.Body()), `"totalPages":3`)
}

func TestRouter_Health(t *testing.T) {
	h := newHandler(t, Options{}, nil)

	rc := serve(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rc.Response.StatusCode())
	assert.Contains(t, string(rc.Response.Body()), `"driver":"memory"`)
}

func TestRouter_DiagnosticRoutes(t *testing.T) {
	h := newHandler(t, Options{}, nil)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/metrics", "").Response.StatusCode())
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/debug/pprof/cmdline", "").Response.StatusCode())

	reg := prometheus.NewRegistry()
	h = newHandler(t, Options{Metrics: reg, Pprof: true}, reg)

	serve(h, http.MethodPost, "/api/v1/auth/login", `{"username":"demo","password":"password123"}`)
	rc := serve(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rc.Response.StatusCode())
	assert.Contains(t, string(rc.Response.Body()), "taskboard_store_operations_total")

	rc = serve(h, http.MethodGet, "/debug/pprof/cmdline", "")
	assert.Equal(t, http.StatusOK, rc.Response.StatusCode())
}
