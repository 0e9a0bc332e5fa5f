package task

import (
	"time"

	"nextassist/internal/domain"
)

type CreateTaskRequest struct {
	ProjectID   string              `json:"project_id" binding:"required"`
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Priority    domain.TaskPriority `json:"priority"`
	Deadline    *time.Time          `json:"deadline"`
}

// UpdateTaskRequest carries a partial update: absent fields keep their
// stored value.
type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Priority    *domain.TaskPriority `json:"priority"`
	Deadline    *time.Time           `json:"deadline"`
	Status      *domain.TaskStatus   `json:"status"`
}

func (r UpdateTaskRequest) toPatch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Deadline:    r.Deadline,
		Status:      r.Status,
	}
}
