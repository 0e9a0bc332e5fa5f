package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskPatch_Apply_SetFieldsWin(t *testing.T) {
	deadline := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	target := Task{
		ID:          "t1",
		Title:       "Old",
		Description: "Old description",
		Priority:    PriorityLow,
		Deadline:    &deadline,
		Status:      TaskNew,
	}

	newTitle := "New"
	newStatus := TaskInProgress
	patch := TaskPatch{Title: &newTitle, Status: &newStatus}
	patch.Apply(&target)

	assert.Equal(t, "New", target.Title)
	assert.Equal(t, TaskInProgress, target.Status)
	assert.Equal(t, "Old description", target.Description)
	assert.Equal(t, PriorityLow, target.Priority)
	assert.Equal(t, &deadline, target.Deadline)
}

func TestTaskPatch_Apply_EmptyStringOverwrites(t *testing.T) {
	target := Task{Title: "Keep", Description: "Drop"}

	empty := ""
	patch := TaskPatch{Description: &empty}
	patch.Apply(&target)

	assert.Equal(t, "Keep", target.Title)
	assert.Equal(t, "", target.Description)
}

func TestTaskPatch_Apply_AllFields(t *testing.T) {
	target := Task{}

	title := "T"
	desc := "D"
	priority := PriorityHigh
	deadline := time.Now().Add(48 * time.Hour)
	status := TaskCompleted
	completed := time.Now()

	patch := TaskPatch{
		Title:       &title,
		Description: &desc,
		Priority:    &priority,
		Deadline:    &deadline,
		Status:      &status,
		CompletedAt: &completed,
	}
	patch.Apply(&target)

	assert.Equal(t, "T", target.Title)
	assert.Equal(t, "D", target.Description)
	assert.Equal(t, PriorityHigh, target.Priority)
	assert.Equal(t, TaskCompleted, target.Status)
	assert.NotNil(t, target.Deadline)
	assert.NotNil(t, target.CompletedAt)
}

func TestTaskPatch_Empty(t *testing.T) {
	assert.True(t, TaskPatch{}.Empty())

	title := "x"
	assert.False(t, TaskPatch{Title: &title}.Empty())
}
