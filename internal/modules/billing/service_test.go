package billing

import (
	"context"
	"testing"

	"nextassist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockBillingRepo struct {
	mock.Mock
}

func (m *mockBillingRepo) GetBalance(ctx context.Context, managerID string) (*domain.BalanceInfo, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceInfo), args.Error(1)
}

func (m *mockBillingRepo) GetAssistantCharge(ctx context.Context, assistantID string) (*domain.AssistantCharge, error) {
	args := m.Called(ctx, assistantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistantCharge), args.Error(1)
}

func (m *mockBillingRepo) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func TestService_GetBalance_Manager(t *testing.T) {
	repo := new(mockBillingRepo)
	repo.On("GetBalance", mock.Anything, "1").Return(&domain.BalanceInfo{
		Total:          25000,
		NextChargeDate: "2025-08-01",
		AssistantCharges: []domain.AssistantCharge{
			{AssistantID: "2", Amount: 25000},
		},
	}, nil)

	service := NewService(repo)

	info, err := service.GetBalance(context.Background(), "1", domain.RoleManager)

	assert.NoError(t, err)
	assert.Equal(t, float64(25000), info.Total)
	assert.Len(t, info.AssistantCharges, 1)
}

func TestService_GetBalance_AssistantSeesOwnCharge(t *testing.T) {
	repo := new(mockBillingRepo)
	repo.On("GetAssistantCharge", mock.Anything, "2").Return(&domain.AssistantCharge{
		AssistantID:     "2",
		Amount:          25000,
		NextPaymentDate: "2025-08-01",
	}, nil)

	service := NewService(repo)

	info, err := service.GetBalance(context.Background(), "2", domain.RoleAssistant)

	assert.NoError(t, err)
	assert.Equal(t, float64(25000), info.Total)
	assert.Equal(t, "2025-08-01", info.NextChargeDate)
	repo.AssertNotCalled(t, "GetBalance")
}

func TestService_GetBalance_NotFound(t *testing.T) {
	repo := new(mockBillingRepo)
	repo.On("GetBalance", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(repo)

	_, err := service.GetBalance(context.Background(), "ghost", domain.RoleManager)

	assert.ErrorIs(t, err, ErrNotFound)
}
