package task

import (
	"context"

	"nextassist/internal/domain"
)

type TaskRepositoryInterface interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) (bool, error)
}

// ProjectReader resolves the pairing so task events can reach the
// other party.
type ProjectReader interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

// NotificationSender pushes an event to a connected user. Delivery is
// best effort.
type NotificationSender interface {
	SendToUser(userID string, message interface{}) bool
}
