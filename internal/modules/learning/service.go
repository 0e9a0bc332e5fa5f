package learning

import (
	"context"
	"errors"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

// Service serves the read-only learning catalog.
type Service struct {
	modules LearningRepositoryInterface
}

func NewService(modules LearningRepositoryInterface) *Service {
	return &Service{modules: modules}
}

func (s *Service) List(ctx context.Context) ([]domain.LearningModule, error) {
	return s.modules.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.LearningModule, error) {
	m, err := s.modules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}
