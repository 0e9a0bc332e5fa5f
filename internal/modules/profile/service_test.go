package profile

import (
	"context"
	"testing"

	"nextassist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) ListExperiences(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}

func (m *mockProfileRepo) CreateExperience(ctx context.Context, e *domain.WorkExperience) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockProfileRepo) UpdateExperience(ctx context.Context, e *domain.WorkExperience) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileRepo) DeleteExperience(ctx context.Context, userID, id string) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileRepo) ListSkills(ctx context.Context, userID string) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *mockProfileRepo) CreateSkill(ctx context.Context, s *domain.Skill) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockProfileRepo) UpdateSkill(ctx context.Context, s *domain.Skill) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileRepo) DeleteSkill(ctx context.Context, userID, id string) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileRepo) ListCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *mockProfileRepo) ListAvailableSkills(ctx context.Context) ([]domain.AvailableSkill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailableSkill), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func TestService_UpdateProfile_PartialFields(t *testing.T) {
	profiles := new(mockProfileRepo)
	users := new(mockUserRepo)

	users.On("GetByID", mock.Anything, "2").Return(&domain.User{
		ID:        "2",
		FirstName: "Maria",
		LastName:  "Soto",
		Company:   "Old Co",
	}, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(profiles, users)

	company := "New Co"
	bio := "Ops generalist"
	updated, err := service.UpdateProfile(context.Background(), "2", UpdateProfileRequest{
		Company: &company,
		Bio:     &bio,
	})

	assert.NoError(t, err)
	assert.Equal(t, "New Co", updated.Company)
	assert.Equal(t, "Ops generalist", updated.Bio)
	assert.Equal(t, "Maria", updated.FirstName)
}

func TestService_UpdateExperience_NotFound(t *testing.T) {
	profiles := new(mockProfileRepo)
	users := new(mockUserRepo)

	profiles.On("UpdateExperience", mock.Anything, mock.Anything).Return(false, nil)

	service := NewService(profiles, users)

	_, err := service.UpdateExperience(context.Background(), "2", "missing", ExperienceRequest{
		Company:   "Acme",
		Position:  "Assistant",
		StartDate: "2023-01",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_AddSkill_AssignsID(t *testing.T) {
	profiles := new(mockProfileRepo)
	users := new(mockUserRepo)

	profiles.On("CreateSkill", mock.Anything, mock.Anything).Return(nil)

	service := NewService(profiles, users)

	skill, err := service.AddSkill(context.Background(), "2", SkillRequest{Name: "Copywriting", Category: "Marketing"})

	assert.NoError(t, err)
	assert.NotEmpty(t, skill.ID)
	assert.Equal(t, "2", skill.UserID)
	assert.Equal(t, "Copywriting", skill.Name)
}

func TestService_DeleteSkill_NotFound(t *testing.T) {
	profiles := new(mockProfileRepo)
	users := new(mockUserRepo)

	profiles.On("DeleteSkill", mock.Anything, "2", "missing").Return(false, nil)

	service := NewService(profiles, users)

	err := service.DeleteSkill(context.Background(), "2", "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetProfile_Aggregates(t *testing.T) {
	profiles := new(mockProfileRepo)
	users := new(mockUserRepo)

	users.On("GetByID", mock.Anything, "2").Return(&domain.User{ID: "2"}, nil)
	profiles.On("ListExperiences", mock.Anything, "2").Return([]domain.WorkExperience{{ID: "e1"}}, nil)
	profiles.On("ListSkills", mock.Anything, "2").Return([]domain.Skill{{ID: "s1"}, {ID: "s2"}}, nil)

	service := NewService(profiles, users)

	resp, err := service.GetProfile(context.Background(), "2")

	assert.NoError(t, err)
	assert.Equal(t, "2", resp.User.ID)
	assert.Len(t, resp.Experiences, 1)
	assert.Len(t, resp.Skills, 2)
}
