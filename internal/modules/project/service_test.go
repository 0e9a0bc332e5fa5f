package project

import (
	"context"
	"testing"

	"nextassist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *mockProjectRepo) ListForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockProjectRepo) CountTasksByStatus(ctx context.Context, projectID string) (map[domain.TaskStatus]int64, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.TaskStatus]int64), args.Error(1)
}

func demoProject() domain.Project {
	return domain.Project{
		ID:                   "1",
		ManagerTitle:         "Marketing launch",
		AssistantTitle:       "Support Anna's launch",
		ManagerDescription:   "Q3 campaign rollout",
		AssistantDescription: "Handle the launch checklist",
		ManagerID:            "1",
		AssistantID:          "2",
		ManagerName:          "Anna Morgan",
	}
}

func TestService_ListForUser_RoleSidedView(t *testing.T) {
	repo := new(mockProjectRepo)
	repo.On("ListForUser", mock.Anything, "2").Return([]domain.Project{demoProject()}, nil)

	service := NewService(repo)

	asAssistant, err := service.ListForUser(context.Background(), "2", domain.RoleAssistant)
	assert.NoError(t, err)
	assert.Len(t, asAssistant, 1)
	assert.Equal(t, "Support Anna's launch", asAssistant[0].Title)
	assert.Equal(t, "Handle the launch checklist", asAssistant[0].Description)

	repo.On("ListForUser", mock.Anything, "1").Return([]domain.Project{demoProject()}, nil)

	asManager, err := service.ListForUser(context.Background(), "1", domain.RoleManager)
	assert.NoError(t, err)
	assert.Equal(t, "Marketing launch", asManager[0].Title)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(mockProjectRepo)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.GetByID(context.Background(), "missing", domain.RoleManager)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Dashboard_Counts(t *testing.T) {
	repo := new(mockProjectRepo)
	repo.On("ListForUser", mock.Anything, "1").Return([]domain.Project{demoProject()}, nil)
	repo.On("CountTasksByStatus", mock.Anything, "1").Return(map[domain.TaskStatus]int64{
		domain.TaskNew:      2,
		domain.TaskAccepted: 1,
	}, nil)

	service := NewService(repo)

	entries, err := service.Dashboard(context.Background(), "1")

	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].TaskCounts.New)
	assert.Equal(t, int64(1), entries[0].TaskCounts.Accepted)
	assert.Equal(t, int64(3), entries[0].TaskCounts.Total)
}
