package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nextassist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// Mock Session Repository
type mockSessionRepo struct {
	mock.Mock
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSessionRepo) GetByHash(ctx context.Context, hash string) (*domain.Session, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSessionRepo) RevokeByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID string, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func newTestService(users *mockUserRepo, sessions *mockSessionRepo, jwtSvc *mockJWTService) *Service {
	return NewService(users, sessions, jwtSvc, NoDelay(), 7*24*time.Hour)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	existingUser := &domain.User{
		ID:           "1",
		Email:        "manager@example.com",
		PasswordHash: "$2a$10$irrelevant",
		FirstName:    "Anna",
		Role:         domain.RoleManager,
	}

	userRepo.On("GetByEmail", mock.Anything, "manager@example.com").Return(existingUser, nil)
	jwtSvc.On("GenerateToken", "1", "manager").Return("login-token", nil)
	sessionRepo.On("RevokeByUser", mock.Anything, "1").Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "Manager@Example.com",
		Password: "anything-goes",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", result.AccessToken)
	assert.Equal(t, "1", result.User.ID)
	assert.Empty(t, result.User.PasswordHash)
	userRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
}

func TestService_Login_ReplacesPriorSession(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "manager@example.com").Return(&domain.User{
		ID:    "1",
		Email: "manager@example.com",
		Role:  domain.RoleManager,
	}, nil)
	jwtSvc.On("GenerateToken", "1", "manager").Return("second-token", nil)
	sessionRepo.On("RevokeByUser", mock.Anything, "1").Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "manager@example.com",
		Password: "anything-goes",
	})

	assert.NoError(t, err)
	sessionRepo.AssertCalled(t, "RevokeByUser", mock.Anything, "1")
	sessionRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_EmptyPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "manager@example.com").Return(&domain.User{
		ID:    "1",
		Email: "manager@example.com",
		Role:  domain.RoleManager,
	}, nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "manager@example.com",
		Password: "   ",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwtSvc.AssertNotCalled(t, "GenerateToken")
}

func TestService_Register_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwtSvc.On("GenerateToken", mock.Anything, "assistant").Return("fresh-token", nil)
	sessionRepo.On("RevokeByUser", mock.Anything, mock.Anything).Return(nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	result, err := service.Register(context.Background(), RegisterRequest{
		Email:     "New@Example.com",
		Password:  "securepass123",
		FirstName: "Dana",
		LastName:  "Lee",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fresh-token", result.AccessToken)
	assert.Equal(t, "new@example.com", result.User.Email)
	assert.Equal(t, domain.RoleAssistant, result.User.Role)
	assert.NotEmpty(t, result.User.ID)
	userRepo.AssertExpectations(t)
}

func TestService_Register_EmailExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "exists@example.com").Return(true, nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "exists@example.com",
		Password: "securepass123",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Restore_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	snapshot, _ := json.Marshal(&domain.User{ID: "2", Email: "assistant@example.com", Role: domain.RoleAssistant})
	sessionRepo.On("GetByHash", mock.Anything, hashToken("live-token")).Return(&domain.Session{
		ID:        1,
		UserID:    "2",
		UserJSON:  string(snapshot),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	user, err := service.Restore(context.Background(), "live-token")

	assert.NoError(t, err)
	assert.Equal(t, "2", user.ID)
	assert.Equal(t, domain.RoleAssistant, user.Role)
}

func TestService_Restore_ExpiredSession(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	sessionRepo.On("GetByHash", mock.Anything, hashToken("stale-token")).Return(&domain.Session{
		ID:        1,
		UserID:    "2",
		UserJSON:  `{"id":"2"}`,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	_, err := service.Restore(context.Background(), "stale-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_Restore_MalformedSnapshot(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	sessionRepo.On("GetByHash", mock.Anything, hashToken("garbled-token")).Return(&domain.Session{
		ID:        1,
		UserID:    "2",
		UserJSON:  "{not json",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	_, err := service.Restore(context.Background(), "garbled-token")

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_Logout_UnknownTokenIsNoop(t *testing.T) {
	userRepo := new(mockUserRepo)
	sessionRepo := new(mockSessionRepo)
	jwtSvc := new(mockJWTService)

	sessionRepo.On("GetByHash", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(userRepo, sessionRepo, jwtSvc)

	err := service.Logout(context.Background(), "never-issued")

	assert.NoError(t, err)
	sessionRepo.AssertNotCalled(t, "Revoke")
}
