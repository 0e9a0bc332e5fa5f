package domain

import "time"

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

type TaskStatus string

const (
	TaskNew        TaskStatus = "new"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskAccepted   TaskStatus = "accepted"
	TaskDeclined   TaskStatus = "declined"
)

// Task rows keep an autoincrement Seq so list queries return tasks in
// insertion order regardless of timestamp precision.
type Task struct {
	Seq         int64        `json:"-" gorm:"primaryKey;autoIncrement"`
	ID          string       `json:"id" gorm:"uniqueIndex"`
	ProjectID   string       `json:"project_id" gorm:"index"`
	Title       string       `json:"title"`
	Description string       `json:"description" gorm:"type:text"`
	Priority    TaskPriority `json:"priority"`
	Deadline    *time.Time   `json:"deadline"`
	Status      TaskStatus   `json:"status"`
	CreatedBy   string       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at"`

	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:TaskID;references:ID"`
}

// TaskPatch is a partial update: nil fields are left untouched, set
// fields replace the current value.
type TaskPatch struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Priority    *TaskPriority `json:"priority"`
	Deadline    *time.Time    `json:"deadline"`
	Status      *TaskStatus   `json:"status"`
	CompletedAt *time.Time    `json:"completed_at"`
}

func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Deadline != nil {
		t.Deadline = p.Deadline
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.CompletedAt != nil {
		t.CompletedAt = p.CompletedAt
	}
}

func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Deadline == nil && p.Status == nil && p.CompletedAt == nil
}

type Comment struct {
	Seq       int64     `json:"-" gorm:"primaryKey;autoIncrement"`
	ID        string    `json:"id" gorm:"uniqueIndex"`
	TaskID    string    `json:"task_id" gorm:"index"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserPhoto string    `json:"user_photo,omitempty"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
