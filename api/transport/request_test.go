package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastygo/taskboard/domain"
)

func TestTaskRequest_Validate(t *testing.T) {
	valid := TaskRequest{
		Title:       "Fix bug",
		Description: "Reproduce and fix it",
		Status:      domain.StatusTodo,
		Priority:    domain.PriorityLow,
	}

	tests := []struct {
		name   string
		mutate func(r *TaskRequest)
		want   ValidationErrors
	}{
		{"valid", func(r *TaskRequest) {}, ValidationErrors{}},
		{"empty title", func(r *TaskRequest) { r.Title = "   " }, ValidationErrors{"title": "Title is required"}},
		{"short title", func(r *TaskRequest) { r.Title = " ab " }, ValidationErrors{"title": "Title must be at least 3 characters"}},
		{"empty description", func(r *TaskRequest) { r.Description = "" }, ValidationErrors{"description": "Description is required"}},
		{"short description", func(r *TaskRequest) { r.Description = "too short" }, ValidationErrors{"description": "Description must be at least 10 characters"}},
		{"bad status", func(r *TaskRequest) { r.Status = "blocked" }, ValidationErrors{"status": "Status is invalid"}},
		{"bad priority", func(r *TaskRequest) { r.Priority = "" }, ValidationErrors{"priority": "Priority is invalid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			assert.Equal(t, tt.want, r.Validate())
		})
	}
}

func TestTaskPatchRequest_ValidatesOnlySuppliedFields(t *testing.T) {
	assert.Empty(t, TaskPatchRequest{}.Validate())

	short := "ab"
	bad := domain.TaskStatus("archived")
	errs := TaskPatchRequest{Title: &short, Status: &bad}.Validate()
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "status")
}

func TestNewUserResponse_OmitsPassword(t *testing.T) {
	resp := NewUserResponse(&domain.User{ID: "1", Username: "demo", Password: "password123"})
	assert.Equal(t, &UserResponse{ID: "1", Username: "demo"}, resp)
	assert.NotContains(t, NewSuccess(resp, nil).String(), "password123")
	assert.Nil(t, NewUserResponse(nil))
}
