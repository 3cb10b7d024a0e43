package transport

import (
	"strings"
	"unicode/utf8"

	"github.com/fastygo/taskboard/domain"
)

const (
	minTitleLength       = 3
	minDescriptionLength = 10
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TaskRequest is the create form: every field is required.
type TaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TaskStatus   `json:"status"`
	Priority    domain.TaskPriority `json:"priority"`
	IsCompleted bool                `json:"isCompleted"`
	IsUrgent    bool                `json:"isUrgent"`
}

// TaskPatchRequest is the edit form: absent fields are left untouched.
type TaskPatchRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *domain.TaskStatus   `json:"status"`
	Priority    *domain.TaskPriority `json:"priority"`
	IsCompleted *bool                `json:"isCompleted"`
	IsUrgent    *bool                `json:"isUrgent"`
}

// ValidationErrors maps a form field to its message.
type ValidationErrors map[string]string

func (r TaskRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	checkTitle(errs, r.Title)
	checkDescription(errs, r.Description)
	if !r.Status.Valid() {
		errs["status"] = "Status is invalid"
	}
	if !r.Priority.Valid() {
		errs["priority"] = "Priority is invalid"
	}
	return errs
}

func (r TaskRequest) Input() domain.TaskInput {
	return domain.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		IsCompleted: r.IsCompleted,
		IsUrgent:    r.IsUrgent,
	}
}

func (r TaskPatchRequest) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if r.Title != nil {
		checkTitle(errs, *r.Title)
	}
	if r.Description != nil {
		checkDescription(errs, *r.Description)
	}
	if r.Status != nil && !r.Status.Valid() {
		errs["status"] = "Status is invalid"
	}
	if r.Priority != nil && !r.Priority.Valid() {
		errs["priority"] = "Priority is invalid"
	}
	return errs
}

func (r TaskPatchRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		IsCompleted: r.IsCompleted,
		IsUrgent:    r.IsUrgent,
	}
}

func checkTitle(errs ValidationErrors, title string) {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		errs["title"] = "Title is required"
	case utf8.RuneCountInString(trimmed) < minTitleLength:
		errs["title"] = "Title must be at least 3 characters"
	}
}

func checkDescription(errs ValidationErrors, description string) {
	trimmed := strings.TrimSpace(description)
	switch {
	case trimmed == "":
		errs["description"] = "Description is required"
	case utf8.RuneCountInString(trimmed) < minDescriptionLength:
		errs["description"] = "Description must be at least 10 characters"
	}
}
