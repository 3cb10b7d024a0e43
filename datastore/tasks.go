package datastore

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/fastygo/taskboard/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// CreateTask stores a new task owned by the session user.
func (s *Store) CreateTask(ctx context.Context, in domain.TaskInput) (*domain.Task, error) {
	userID, err := s.requireSession()
	if err != nil {
		return nil, err
	}

	ts := s.now()
	task := domain.Task{
		ID:          s.newID(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		IsCompleted: in.IsCompleted,
		IsUrgent:    in.IsUrgent,
		CreatedAt:   ts,
		UpdatedAt:   ts,
		UserID:      userID,
	}

	snap := s.snapshot()
	s.tasks = append(s.tasks, task)
	if err := s.persist(ctx); err != nil {
		return nil, s.rollback(ctx, snap, err)
	}

	s.logger.Debug("task created", zap.String("task_id", task.ID), zap.String("user_id", userID))
	return &task, nil
}

// GetTasks returns one page of the session user's tasks matching filter,
// newest update first.
func (s *Store) GetTasks(ctx context.Context, filter domain.TaskFilter, page, limit int) (*domain.TaskPage, error) {
	userID, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	matched := make([]domain.Task, 0, len(s.tasks))
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.OwnedBy(userID) && filter.Matches(t) {
			matched = append(matched, *t)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.Task) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})

	total := len(matched)
	window := []domain.Task{}
	// Compare page indexes before multiplying so huge page or limit values cannot overflow.
	if total > 0 && page-1 <= (total-1)/limit {
		start := (page - 1) * limit
		window = matched[start : start+min(limit, total-start)]
	}

	return &domain.TaskPage{
		Tasks: window,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: total/limit + min(total%limit, 1),
		},
	}, nil
}

// GetTaskByID returns the task only if the session user owns it; otherwise (nil, nil).
func (s *Store) GetTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	userID, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	idx := s.indexOwned(id, userID)
	if idx < 0 {
		return nil, nil
	}
	task := s.tasks[idx]
	return &task, nil
}

// UpdateTask merges patch into the owned task and refreshes UpdatedAt.
// It returns (nil, nil) when the task is absent or owned by someone else.
func (s *Store) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	userID, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	idx := s.indexOwned(id, userID)
	if idx < 0 {
		return nil, nil
	}

	snap := s.snapshot()
	task := s.tasks[idx]
	patch.Apply(&task)
	ts := s.now()
	if ts.Before(task.UpdatedAt) {
		ts = task.UpdatedAt
	}
	task.UpdatedAt = ts
	s.tasks[idx] = task

	if err := s.persist(ctx); err != nil {
		return nil, s.rollback(ctx, snap, err)
	}

	s.logger.Debug("task updated", zap.String("task_id", id))
	return &task, nil
}

// DeleteTask removes an owned task and reports whether anything was removed.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	userID, err := s.requireSession()
	if err != nil {
		return false, err
	}
	idx := s.indexOwned(id, userID)
	if idx < 0 {
		return false, nil
	}

	snap := s.snapshot()
	s.tasks = slices.Delete(slices.Clone(s.tasks), idx, idx+1)
	if err := s.persist(ctx); err != nil {
		return false, s.rollback(ctx, snap, err)
	}

	s.logger.Debug("task deleted", zap.String("task_id", id))
	return true, nil
}

func (s *Store) indexOwned(id, userID string) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id && t.OwnedBy(userID)
	})
}
