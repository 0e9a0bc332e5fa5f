package comment

import (
	"context"

	"nextassist/internal/domain"
)

// CommentRepositoryInterface is append-only: no update or delete.
type CommentRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
}

type TaskReader interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
}

type ProjectReader interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type NotificationSender interface {
	SendToUser(userID string, message interface{}) bool
}
