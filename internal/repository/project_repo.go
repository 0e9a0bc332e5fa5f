package repository

import (
	"context"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	tx := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("Tasks.Comments", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("Reports", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Where("id = ?", id).
		First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// ListForUser returns every project the user participates in, on either
// side of the pairing.
func (r *ProjectRepository) ListForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	var projects []domain.Project
	tx := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Where("manager_id = ? OR assistant_id = ?", userID, userID).
		Find(&projects)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return projects, nil
}

// CountTasksByStatus aggregates a project's tasks for the dashboard view.
func (r *ProjectRepository) CountTasksByStatus(ctx context.Context, projectID string) (map[domain.TaskStatus]int64, error) {
	rows, err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Select("status, count(*) as count").
		Where("project_id = ?", projectID).
		Group("status").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.TaskStatus]int64{}
	for rows.Next() {
		var status domain.TaskStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
