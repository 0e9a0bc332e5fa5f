package domain

// Billing entities are read-only display aggregates seeded from fixtures.
// There is no real payment processing behind them.

type AssistantCharge struct {
	AssistantID     string  `json:"assistant_id" gorm:"primaryKey"`
	AssistantName   string  `json:"assistant_name"`
	Amount          float64 `json:"amount"`
	NextPaymentDate string  `json:"next_payment_date"`
}

// Balance is the persisted row behind the BalanceInfo aggregate; one
// row per manager.
type Balance struct {
	ManagerID      string  `json:"manager_id" gorm:"primaryKey"`
	Total          float64 `json:"total"`
	NextChargeDate string  `json:"next_charge_date"`
}

// BalanceInfo is the aggregate the balance screens render.
type BalanceInfo struct {
	Total            float64           `json:"total"`
	NextChargeDate   string            `json:"next_charge_date"`
	AssistantCharges []AssistantCharge `json:"assistant_charges"`
}

type TransactionType string

const (
	TransactionCharge  TransactionType = "charge"
	TransactionPayment TransactionType = "payment"
)

type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	UserID      string          `json:"user_id" gorm:"index"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
}
