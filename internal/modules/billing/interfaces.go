package billing

import (
	"context"

	"nextassist/internal/domain"
)

type BillingRepositoryInterface interface {
	GetBalance(ctx context.Context, managerID string) (*domain.BalanceInfo, error)
	GetAssistantCharge(ctx context.Context, assistantID string) (*domain.AssistantCharge, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
}
