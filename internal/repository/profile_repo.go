package repository

import (
	"context"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

// ProfileRepository covers the per-user profile collections: work
// experiences, skills and completed courses, plus the skills catalog.
type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) ListExperiences(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	var experiences []domain.WorkExperience
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_date DESC").Find(&experiences)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return experiences, nil
}

func (r *ProfileRepository) CreateExperience(ctx context.Context, e *domain.WorkExperience) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ProfileRepository) UpdateExperience(ctx context.Context, e *domain.WorkExperience) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.WorkExperience{}).
		Where("id = ? AND user_id = ?", e.ID, e.UserID).
		Updates(map[string]any{
			"company":     e.Company,
			"position":    e.Position,
			"start_date":  e.StartDate,
			"end_date":    e.EndDate,
			"description": e.Description,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ProfileRepository) DeleteExperience(ctx context.Context, userID, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.WorkExperience{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ProfileRepository) ListSkills(ctx context.Context, userID string) ([]domain.Skill, error) {
	var skills []domain.Skill
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&skills)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return skills, nil
}

func (r *ProfileRepository) CreateSkill(ctx context.Context, s *domain.Skill) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ProfileRepository) UpdateSkill(ctx context.Context, s *domain.Skill) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Skill{}).
		Where("id = ? AND user_id = ?", s.ID, s.UserID).
		Updates(map[string]any{"name": s.Name, "category": s.Category})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ProfileRepository) DeleteSkill(ctx context.Context, userID, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Skill{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *ProfileRepository) ListCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	var courses []domain.Course
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("completed_date DESC").Find(&courses)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return courses, nil
}

func (r *ProfileRepository) ListAvailableSkills(ctx context.Context) ([]domain.AvailableSkill, error) {
	var catalog []domain.AvailableSkill
	tx := r.db.WithContext(ctx).Order("category, name").Find(&catalog)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return catalog, nil
}
