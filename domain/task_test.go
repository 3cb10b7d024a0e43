package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestStatusAndPriorityValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusDone} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, TaskStatus("").Valid())
	assert.False(t, TaskStatus("TODO").Valid())

	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, TaskPriority("urgent").Valid())
}

func TestTaskPatch_ApplyOnlySuppliedFields(t *testing.T) {
	task := Task{ID: "t1", Title: "Old", Description: "Old description", Status: StatusTodo, Priority: PriorityLow, UserID: "1"}

	TaskPatch{Title: ptr("New"), IsUrgent: ptr(true)}.Apply(&task)

	assert.Equal(t, "New", task.Title)
	assert.True(t, task.IsUrgent)
	assert.Equal(t, "Old description", task.Description)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "1", task.UserID)

	assert.NotPanics(t, func() { TaskPatch{Title: ptr("x")}.Apply(nil) })
}

func TestTaskFilter_Matches(t *testing.T) {
	task := &Task{
		Title:       "Write Quarterly Report",
		Description: "Numbers for finance",
		Status:      StatusInProgress,
		Priority:    PriorityHigh,
		IsUrgent:    true,
	}

	tests := []struct {
		name   string
		filter TaskFilter
		want   bool
	}{
		{"empty filter", TaskFilter{}, true},
		{"status match", TaskFilter{Status: ptr(StatusInProgress)}, true},
		{"status mismatch", TaskFilter{Status: ptr(StatusDone)}, false},
		{"priority and urgent", TaskFilter{Priority: ptr(PriorityHigh), IsUrgent: ptr(true)}, true},
		{"completed false matches", TaskFilter{IsCompleted: ptr(false)}, true},
		{"completed true excludes", TaskFilter{IsCompleted: ptr(true)}, false},
		{"search title case-insensitive", TaskFilter{Search: "quarterly"}, true},
		{"search description", TaskFilter{Search: "FINANCE"}, true},
		{"search miss", TaskFilter{Search: "budget"}, false},
		{"AND of search and status", TaskFilter{Search: "report", Status: ptr(StatusDone)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(task))
		})
	}
	assert.False(t, TaskFilter{}.Matches(nil))
}

func TestOwnedBy(t *testing.T) {
	task := &Task{UserID: "1"}
	assert.True(t, task.OwnedBy("1"))
	assert.False(t, task.OwnedBy("2"))
	assert.False(t, task.OwnedBy(""))
	assert.False(t, (*Task)(nil).OwnedBy("1"))
}
