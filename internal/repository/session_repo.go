package repository

import (
	"context"
	"time"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

// SessionRepository is the durable slot behind logged-in users. It is
// the server-side Session Store: login writes a record, the restore
// path reads it, logout revokes it.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SessionRepository) GetByHash(ctx context.Context, hash string) (*domain.Session, error) {
	var s domain.Session
	err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&domain.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now).Error
}

func (r *SessionRepository) RevokeByUser(ctx context.Context, userID string) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&domain.Session{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

// DeleteExpired purges sessions past their expiry plus revoked ones
// older than 30 days, and reports how many rows went. Run by
// cmd/auth_cleanup.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	tx := r.db.WithContext(ctx).
		Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", now, now.AddDate(0, 0, -30)).
		Delete(&domain.Session{})
	return tx.RowsAffected, tx.Error
}
