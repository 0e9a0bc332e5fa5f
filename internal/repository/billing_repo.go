package repository

import (
	"context"

	"nextassist/internal/domain"

	"gorm.io/gorm"
)

type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

func (r *BillingRepository) GetBalance(ctx context.Context, managerID string) (*domain.BalanceInfo, error) {
	var row domain.Balance
	tx := r.db.WithContext(ctx).Where("manager_id = ?", managerID).First(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}

	var charges []domain.AssistantCharge
	if err := r.db.WithContext(ctx).Find(&charges).Error; err != nil {
		return nil, err
	}

	return &domain.BalanceInfo{
		Total:            row.Total,
		NextChargeDate:   row.NextChargeDate,
		AssistantCharges: charges,
	}, nil
}

func (r *BillingRepository) GetAssistantCharge(ctx context.Context, assistantID string) (*domain.AssistantCharge, error) {
	var charge domain.AssistantCharge
	tx := r.db.WithContext(ctx).Where("assistant_id = ?", assistantID).First(&charge)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &charge, nil
}

func (r *BillingRepository) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&transactions)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return transactions, nil
}
