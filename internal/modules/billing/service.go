package billing

import (
	"context"
	"errors"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

// Service exposes the read-only billing views. The figures come from
// fixtures; nothing here touches a payment provider.
type Service struct {
	billing BillingRepositoryInterface
}

func NewService(billing BillingRepositoryInterface) *Service {
	return &Service{billing: billing}
}

// GetBalance returns the manager aggregate or, for assistants, their
// own charge wrapped in the same shape.
func (s *Service) GetBalance(ctx context.Context, userID string, role domain.UserRole) (*domain.BalanceInfo, error) {
	if role == domain.RoleAssistant {
		charge, err := s.billing.GetAssistantCharge(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return &domain.BalanceInfo{
			Total:            charge.Amount,
			NextChargeDate:   charge.NextPaymentDate,
			AssistantCharges: []domain.AssistantCharge{*charge},
		}, nil
	}

	info, err := s.billing.GetBalance(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return info, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	return s.billing.ListTransactions(ctx, userID)
}
