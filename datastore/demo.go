package datastore

import (
	"context"

	"github.com/fastygo/taskboard/domain"
)

// Seeded account credentials.
const (
	DefaultUserID   = "1"
	DefaultUsername = "demo"
	DefaultPassword = "password123"
)

// DefaultUser is the single account seeded on first start.
func DefaultUser() domain.User {
	return domain.User{
		ID:       DefaultUserID,
		Username: DefaultUsername,
		Password: DefaultPassword,
	}
}

// DemoTasks is the sample fixture inserted by GenerateDemoData.
func DemoTasks() []domain.TaskInput {
	return []domain.TaskInput{
		{
			Title:       "Complete project documentation",
			Description: "Write comprehensive documentation for the new project including API specs and user guides",
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			IsUrgent:    true,
		},
		{
			Title:       "Code review for authentication module",
			Description: "Review pull request #123 for the new authentication system",
			Status:      domain.StatusReview,
			Priority:    domain.PriorityMedium,
		},
		{
			Title:       "Fix login page styling",
			Description: "Update CSS for better mobile responsiveness on login page",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityLow,
		},
		{
			Title:       "Setup CI/CD pipeline",
			Description: "Configure GitHub Actions for automated testing and deployment",
			Status:      domain.StatusDone,
			Priority:    domain.PriorityHigh,
			IsCompleted: true,
		},
		{
			Title:       "Database migration",
			Description: "Run migration scripts for the new user table schema",
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityCritical,
			IsUrgent:    true,
		},
	}
}

// GenerateDemoData creates the DemoTasks fixture for the session user.
func (s *Store) GenerateDemoData(ctx context.Context) ([]domain.Task, error) {
	if _, err := s.requireSession(); err != nil {
		return nil, err
	}
	fixture := DemoTasks()
	created := make([]domain.Task, 0, len(fixture))
	for _, in := range fixture {
		task, err := s.CreateTask(ctx, in)
		if err != nil {
			return created, err
		}
		created = append(created, *task)
	}
	return created, nil
}
