package repository

import (
	"context"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByTask returns comments strictly in insertion order; comments are
// never updated or deleted.
func (r *CommentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	tx := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("seq ASC").
		Find(&comments)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return comments, nil
}
