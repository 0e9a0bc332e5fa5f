package project

import (
	"context"
	"errors"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

// Service answers the project queries. Projects are seeded, never
// created over the API.
type Service struct {
	projects ProjectRepositoryInterface
}

func NewService(projects ProjectRepositoryInterface) *Service {
	return &Service{projects: projects}
}

func (s *Service) ListForUser(ctx context.Context, userID string, role domain.UserRole) ([]ProjectView, error) {
	projects, err := s.projects.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]ProjectView, 0, len(projects))
	for i := range projects {
		views = append(views, viewFor(&projects[i], role))
	}
	return views, nil
}

func (s *Service) GetByID(ctx context.Context, id string, role domain.UserRole) (*ProjectDetail, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &ProjectDetail{
		ProjectView: viewFor(p, role),
		Tasks:       p.Tasks,
		Reports:     p.Reports,
	}, nil
}

// Dashboard aggregates per-project task counts for the manager's
// landing view.
func (s *Service) Dashboard(ctx context.Context, managerID string) ([]DashboardEntry, error) {
	projects, err := s.projects.ListForUser(ctx, managerID)
	if err != nil {
		return nil, err
	}

	entries := make([]DashboardEntry, 0, len(projects))
	for i := range projects {
		counts, err := s.projects.CountTasksByStatus(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}

		tc := TaskCounts{
			New:        counts[domain.TaskNew],
			InProgress: counts[domain.TaskInProgress],
			Completed:  counts[domain.TaskCompleted],
			Accepted:   counts[domain.TaskAccepted],
			Declined:   counts[domain.TaskDeclined],
		}
		tc.Total = tc.New + tc.InProgress + tc.Completed + tc.Accepted + tc.Declined

		entries = append(entries, DashboardEntry{
			ProjectView: viewFor(&projects[i], domain.RoleManager),
			TaskCounts:  tc,
		})
	}
	return entries, nil
}
