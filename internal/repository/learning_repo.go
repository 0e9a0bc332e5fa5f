package repository

import (
	"context"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

type LearningRepository struct {
	db *gorm.DB
}

func NewLearningRepository(db *gorm.DB) *LearningRepository {
	return &LearningRepository{db: db}
}

func (r *LearningRepository) List(ctx context.Context) ([]domain.LearningModule, error) {
	var modules []domain.LearningModule
	tx := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Find(&modules)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return modules, nil
}

func (r *LearningRepository) GetByID(ctx context.Context, id string) (*domain.LearningModule, error) {
	var m domain.LearningModule
	tx := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Where("id = ?", id).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}
