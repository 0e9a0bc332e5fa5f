package report

import (
	"context"
	"testing"

	"nextassist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) Create(ctx context.Context, report *domain.DailyReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepo) ListByProject(ctx context.Context, projectID string) ([]domain.DailyReport, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyReport), args.Error(1)
}

type mockProjectReader struct {
	mock.Mock
}

func (m *mockProjectReader) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func TestService_Create_Persists(t *testing.T) {
	reports := new(mockReportRepo)
	projects := new(mockProjectReader)

	projects.On("GetByID", mock.Anything, "1").Return(&domain.Project{ID: "1"}, nil)
	reports.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(reports, projects)

	created, err := service.Create(context.Background(), "2", CreateReportRequest{
		ProjectID:    "1",
		Date:         "2025-07-14",
		Summary:      "Wrapped the launch checklist",
		Achievements: []string{"Sent the press kit"},
		NextDayPlans: []string{"Collect replies"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2", created.CreatedBy)
	assert.False(t, created.CreatedAt.IsZero())
	reports.AssertExpectations(t)
}

func TestService_Create_ProjectMissing(t *testing.T) {
	reports := new(mockReportRepo)
	projects := new(mockProjectReader)

	projects.On("GetByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(reports, projects)

	_, err := service.Create(context.Background(), "2", CreateReportRequest{
		ProjectID: "ghost",
		Date:      "2025-07-14",
		Summary:   "Nowhere to go",
	})

	assert.ErrorIs(t, err, ErrProjectNotFound)
	reports.AssertNotCalled(t, "Create")
}

func TestService_ListByProject(t *testing.T) {
	reports := new(mockReportRepo)
	projects := new(mockProjectReader)

	projects.On("GetByID", mock.Anything, "1").Return(&domain.Project{ID: "1"}, nil)
	reports.On("ListByProject", mock.Anything, "1").Return([]domain.DailyReport{
		{ID: "r1", Summary: "Day one"},
	}, nil)

	service := NewService(reports, projects)

	list, err := service.ListByProject(context.Background(), "1")

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Day one", list[0].Summary)
}
