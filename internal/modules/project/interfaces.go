package project

import (
	"context"

	"nextassist/internal/domain"
)

// ProjectRepositoryInterface covers only the methods the project service uses.
type ProjectRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Project, error)
	CountTasksByStatus(ctx context.Context, projectID string) (map[domain.TaskStatus]int64, error)
}
