package report

import (
	"context"

	"nextassist/internal/domain"
)

type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *domain.DailyReport) error
	ListByProject(ctx context.Context, projectID string) ([]domain.DailyReport, error)
}

type ProjectReader interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}
