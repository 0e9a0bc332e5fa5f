package auth

import (
	"context"

	"nextassist/internal/domain"
)

// UserRepositoryInterface covers only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SessionRepositoryInterface is the durable session slot. Expired-row
// cleanup lives on the concrete repository and is run by
// cmd/auth_cleanup, not by this service.
type SessionRepositoryInterface interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByHash(ctx context.Context, hash string) (*domain.Session, error)
	Revoke(ctx context.Context, id int64) error
	RevokeByUser(ctx context.Context, userID string) error
}
