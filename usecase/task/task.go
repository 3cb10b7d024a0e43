package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/taskboard/domain"
	"github.com/fastygo/taskboard/pkg/metrics"
	"github.com/fastygo/taskboard/usecase"
)

// ListQuery is a filter plus the requested window.
type ListQuery struct {
	Filter domain.TaskFilter
	Page   int
	Limit  int
}

type UseCase struct {
	tasks      usecase.TaskStore
	dispatcher *usecase.Dispatcher
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func New(tasks usecase.TaskStore, dispatcher *usecase.Dispatcher, m *metrics.Metrics, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatcher == nil {
		dispatcher = usecase.NewDispatcher(logger, m)
	}
	return &UseCase{
		tasks:      tasks,
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context, q ListQuery) (*domain.TaskPage, error) {
	page, err := usecase.Query(ctx, uc.dispatcher, "list_tasks", func(ctx context.Context) (*domain.TaskPage, error) {
		return uc.tasks.GetTasks(ctx, q.Filter, q.Page, q.Limit)
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.SetListedTotal(page.Pagination.Total)
	return page, nil
}

// GetTask returns domain.ErrTaskNotFound for tasks that are missing or not owned.
func (uc *UseCase) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := usecase.Query(ctx, uc.dispatcher, "get_task", func(ctx context.Context) (*domain.Task, error) {
		return uc.tasks.GetTaskByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}

func (uc *UseCase) CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	task, err := usecase.Query(ctx, uc.dispatcher, "create_task", func(ctx context.Context) (*domain.Task, error) {
		return uc.tasks.CreateTask(ctx, in)
	})
	if err != nil {
		uc.logError("create task failed", err)
		return nil, err
	}
	uc.logger.Info("task created", zap.String("task_id", task.ID), zap.String("user_id", task.UserID))
	return task, nil
}

func (uc *UseCase) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	task, err := usecase.Query(ctx, uc.dispatcher, "update_task", func(ctx context.Context) (*domain.Task, error) {
		return uc.tasks.UpdateTask(ctx, id, patch)
	})
	if err != nil {
		uc.logError("update task failed", err, zap.String("task_id", id))
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	uc.logger.Info("task updated", zap.String("task_id", id))
	return task, nil
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) error {
	removed, err := usecase.Query(ctx, uc.dispatcher, "delete_task", func(ctx context.Context) (bool, error) {
		return uc.tasks.DeleteTask(ctx, id)
	})
	if err != nil {
		uc.logError("delete task failed", err, zap.String("task_id", id))
		return err
	}
	if !removed {
		return domain.ErrTaskNotFound
	}
	uc.logger.Info("task deleted", zap.String("task_id", id))
	return nil
}

func (uc *UseCase) GenerateDemoData(ctx context.Context) ([]domain.Task, error) {
	created, err := usecase.Query(ctx, uc.dispatcher, "generate_demo_data", func(ctx context.Context) ([]domain.Task, error) {
		return uc.tasks.GenerateDemoData(ctx)
	})
	if err != nil {
		uc.logError("demo data generation failed", err, zap.Int("created", len(created)))
		return nil, err
	}
	uc.logger.Info("demo data generated", zap.Int("created", len(created)))
	return created, nil
}

// logError keeps unauthenticated calls at warn level; they are routine.
func (uc *UseCase) logError(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
		uc.logger.Warn(msg, fields...)
		return
	}
	uc.logger.Error(msg, fields...)
}
