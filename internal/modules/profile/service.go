package profile

import (
	"context"
	"errors"

	"nextassist/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service covers the profile screens: user fields, work experiences,
// skills, completed courses and the skills catalog. Experience and
// skill updates are replace-by-id; a miss is an explicit not-found.
type Service struct {
	profiles ProfileRepositoryInterface
	users    UserRepositoryInterface
}

func NewService(profiles ProfileRepositoryInterface, users UserRepositoryInterface) *Service {
	return &Service{profiles: profiles, users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	experiences, err := s.profiles.ListExperiences(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills, err := s.profiles.ListSkills(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{User: user, Experiences: experiences, Skills: skills}, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.TaxID != nil {
		user.TaxID = *req.TaxID
	}
	if req.HasAcceptedOffer != nil {
		user.HasAcceptedOffer = *req.HasAcceptedOffer
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) AddExperience(ctx context.Context, userID string, req ExperienceRequest) (*domain.WorkExperience, error) {
	e := &domain.WorkExperience{
		ID:          uuid.NewString(),
		UserID:      userID,
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	if err := s.profiles.CreateExperience(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) UpdateExperience(ctx context.Context, userID, id string, req ExperienceRequest) (*domain.WorkExperience, error) {
	e := &domain.WorkExperience{
		ID:          id,
		UserID:      userID,
		Company:     req.Company,
		Position:    req.Position,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	found, err := s.profiles.UpdateExperience(ctx, e)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *Service) DeleteExperience(ctx context.Context, userID, id string) error {
	found, err := s.profiles.DeleteExperience(ctx, userID, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListExperiences(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	return s.profiles.ListExperiences(ctx, userID)
}

func (s *Service) AddSkill(ctx context.Context, userID string, req SkillRequest) (*domain.Skill, error) {
	skill := &domain.Skill{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
	}
	if err := s.profiles.CreateSkill(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *Service) UpdateSkill(ctx context.Context, userID, id string, req SkillRequest) (*domain.Skill, error) {
	skill := &domain.Skill{
		ID:       id,
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
	}
	found, err := s.profiles.UpdateSkill(ctx, skill)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return skill, nil
}

func (s *Service) DeleteSkill(ctx context.Context, userID, id string) error {
	found, err := s.profiles.DeleteSkill(ctx, userID, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListSkills(ctx context.Context, userID string) ([]domain.Skill, error) {
	return s.profiles.ListSkills(ctx, userID)
}

func (s *Service) ListCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	return s.profiles.ListCourses(ctx, userID)
}

func (s *Service) ListAvailableSkills(ctx context.Context) ([]domain.AvailableSkill, error) {
	return s.profiles.ListAvailableSkills(ctx)
}
