package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/taskboard/api/transport"
	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/pkg/httpcontext"
	taskUC "github.com/fastygo/taskboard/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	query, errs := parseListQuery(ctx.QueryArgs())
	if len(errs) > 0 {
		h.respondInvalid(ctx, errs)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	page, err := h.uc.ListTasks(stdCtx, query)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewSuccess(page.Tasks, page.Pagination))
}

// @Summary Get task
// @Tags tasks
// @Router /api/v1/tasks/{id} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskRequest
	if !h.decode(ctx, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondInvalid(ctx, errs)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, req.Input())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	var req transport.TaskPatchRequest
	if !h.decode(ctx, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		h.respondInvalid(ctx, errs)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, id, req.Patch())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	id, ok := h.taskID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.DeleteResponse{ID: id, Deleted: true})
}

// @Summary Load the demo task set
// @Tags tasks
// @Router /api/v1/tasks/demo [post]
func (h *TaskHandler) GenerateDemo(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.GenerateDemoData(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, tasks)
}

func (h *TaskHandler) taskID(ctx *fasthttp.RequestCtx) (string, bool) {
	id, _ := ctx.UserValue("id").(string)
	if strings.TrimSpace(id) == "" {
		h.respondInvalid(ctx, "missing task id")
		return "", false
	}
	return id, true
}

func parseListQuery(args *fasthttp.Args) (taskUC.ListQuery, transport.ValidationErrors) {
	errs := transport.ValidationErrors{}
	q := taskUC.ListQuery{
		Page:  parseInt(string(args.Peek("page")), 0),
		Limit: parseInt(string(args.Peek("limit")), 0),
	}
	q.Filter.Search = strings.TrimSpace(string(args.Peek("search")))

	if raw := string(args.Peek("status")); raw != "" {
		status := domain.TaskStatus(raw)
		if !status.Valid() {
			errs["status"] = "Status is invalid"
		}
		q.Filter.Status = &status
	}
	if raw := string(args.Peek("priority")); raw != "" {
		priority := domain.TaskPriority(raw)
		if !priority.Valid() {
			errs["priority"] = "Priority is invalid"
		}
		q.Filter.Priority = &priority
	}
	q.Filter.IsCompleted = parseBool(args, "is_completed", errs)
	q.Filter.IsUrgent = parseBool(args, "is_urgent", errs)
	return q, errs
}

func parseBool(args *fasthttp.Args, name string, errs transport.ValidationErrors) *bool {
	raw := string(args.Peek(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		errs[name] = "must be true or false"
		return nil
	}
	return &v
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
