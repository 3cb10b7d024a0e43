package usecase

import (
	"context"

	"github.com/fastygo/taskboard/domain"
)

// SessionStore is the authentication half of datastore.Store.
type SessionStore interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *domain.User
}

// TaskStore is the owner-scoped task half of datastore.Store.
type TaskStore interface {
	CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error)
	GetTasks(ctx context.Context, filter domain.TaskFilter, page, limit int) (*domain.TaskPage, error)
	GetTaskByID(ctx context.Context, id string) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
	GenerateDemoData(ctx context.Context) ([]domain.Task, error)
}
