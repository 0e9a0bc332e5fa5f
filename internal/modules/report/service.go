package report

import (
	"context"
	"errors"
	"time"

	"nextassist/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service stores daily reports and lists them per project. Stored
// reports are immediately visible to the list query.
type Service struct {
	reports  ReportRepositoryInterface
	projects ProjectReader
}

func NewService(reports ReportRepositoryInterface, projects ProjectReader) *Service {
	return &Service{reports: reports, projects: projects}
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]domain.DailyReport, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.reports.ListByProject(ctx, projectID)
}

func (s *Service) Create(ctx context.Context, authorID string, req CreateReportRequest) (*domain.DailyReport, error) {
	if _, err := s.projects.GetByID(ctx, req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	report := &domain.DailyReport{
		ID:           uuid.NewString(),
		ProjectID:    req.ProjectID,
		Date:         req.Date,
		Summary:      req.Summary,
		Achievements: req.Achievements,
		Challenges:   req.Challenges,
		NextDayPlans: req.NextDayPlans,
		CreatedBy:    authorID,
		CreatedAt:    time.Now(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}
