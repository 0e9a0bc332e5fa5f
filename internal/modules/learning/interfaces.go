package learning

import (
	"context"

	"nextassist/internal/domain"
)

type LearningRepositoryInterface interface {
	List(ctx context.Context) ([]domain.LearningModule, error)
	GetByID(ctx context.Context, id string) (*domain.LearningModule, error)
}
