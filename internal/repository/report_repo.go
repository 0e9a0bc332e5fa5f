package repository

import (
	"context"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.DailyReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

func (r *ReportRepository) ListByProject(ctx context.Context, projectID string) ([]domain.DailyReport, error) {
	var reports []domain.DailyReport
	tx := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("seq ASC").
		Find(&reports)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return reports, nil
}
