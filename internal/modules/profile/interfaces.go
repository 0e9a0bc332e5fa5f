package profile

import (
	"context"

	"nextassist/internal/domain"
)

type ProfileRepositoryInterface interface {
	ListExperiences(ctx context.Context, userID string) ([]domain.WorkExperience, error)
	CreateExperience(ctx context.Context, e *domain.WorkExperience) error
	UpdateExperience(ctx context.Context, e *domain.WorkExperience) (bool, error)
	DeleteExperience(ctx context.Context, userID, id string) (bool, error)

	ListSkills(ctx context.Context, userID string) ([]domain.Skill, error)
	CreateSkill(ctx context.Context, s *domain.Skill) error
	UpdateSkill(ctx context.Context, s *domain.Skill) (bool, error)
	DeleteSkill(ctx context.Context, userID, id string) (bool, error)

	ListCourses(ctx context.Context, userID string) ([]domain.Course, error)
	ListAvailableSkills(ctx context.Context) ([]domain.AvailableSkill, error)
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}
