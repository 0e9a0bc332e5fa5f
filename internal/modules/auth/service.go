package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"nextassist/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID string, role string) (string, error)
}

// DelayFunc is the injected stand-in for the portal's mock network
// round trip. Production wiring sleeps; tests pass a no-op.
type DelayFunc func(ctx context.Context)

func SleepDelay(d time.Duration) DelayFunc {
	return func(ctx context.Context) {
		if d <= 0 {
			return
		}
		select {
		case <-time.After(d):
		case <-ctx.Done():
		}
	}
}

func NoDelay() DelayFunc {
	return func(context.Context) {}
}

// Service contains the session operations: login, register, logout and
// session restore. The password is accepted but deliberately not
// verified on login; the portal authenticates demo accounts by email
// only. Registration still stores a bcrypt hash.
type Service struct {
	users      UserRepositoryInterface
	sessions   SessionRepositoryInterface
	jwt        jwtService
	delay      DelayFunc
	sessionTTL time.Duration
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

func NewService(
	users UserRepositoryInterface,
	sessions SessionRepositoryInterface,
	jwt jwtService,
	delay DelayFunc,
	sessionTTL time.Duration,
) *Service {
	if delay == nil {
		delay = NoDelay()
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		jwt:        jwt,
		delay:      delay,
		sessionTTL: sessionTTL,
	}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	s.delay(ctx)

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if strings.TrimSpace(req.Password) == "" {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	s.delay(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleAssistant
	if req.Role == string(domain.RoleManager) {
		role = domain.RoleManager
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
		AvatarURL:    req.AvatarURL,
		Company:      req.Company,
		Bio:          req.Bio,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

// Logout revokes the session behind the token. Unknown tokens are not
// an error: logout always succeeds.
func (s *Service) Logout(ctx context.Context, rawToken string) error {
	session, err := s.sessions.GetByHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.sessions.Revoke(ctx, session.ID)
}

// Restore hands back the user snapshot stored at login. A snapshot that
// no longer parses is logged and treated as no session.
func (s *Service) Restore(ctx context.Context, rawToken string) (*domain.User, error) {
	session, err := s.sessions.GetByHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	now := time.Now()
	if session.IsRevoked() || session.IsExpired(now) {
		return nil, ErrUnauthorized
	}

	var user domain.User
	if err := json.Unmarshal([]byte(session.UserJSON), &user); err != nil {
		log.Printf("session restore: malformed user snapshot for user_id=%s: %v", session.UserID, err)
		return nil, ErrUnauthorized
	}
	return &user, nil
}

func (s *Service) openSession(ctx context.Context, user *domain.User) (*LoginResult, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	snapshot := *user
	snapshot.PasswordHash = ""
	payload, err := json.Marshal(&snapshot)
	if err != nil {
		return nil, err
	}

	// The session slot holds one record per user: a fresh login
	// replaces whatever session existed before.
	if err := s.sessions.RevokeByUser(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := s.sessions.Create(ctx, &domain.Session{
		UserID:    user.ID,
		TokenHash: hashToken(token),
		UserJSON:  string(payload),
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}); err != nil {
		return nil, err
	}

	return &LoginResult{User: &snapshot, AccessToken: token}, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
