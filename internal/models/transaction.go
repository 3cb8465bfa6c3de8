package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "Income"
	TypeExpense TransactionType = "Expense"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentNetBanking PaymentMethod = "Net Banking"
	PaymentOthers     PaymentMethod = "Others"
)

// Transaction is a single financial record owned by a user. Date is kept as the
// raw date string the record was created with; the trend aggregator parses it
// leniently and tolerates unparseable values.
type Transaction struct {
	ID            uuid.UUID       `db:"id"`
	UserID        string          `db:"user_id"`
	Type          TransactionType `db:"type"`
	Amount        float64         `db:"amount"`
	Category      string          `db:"category"`
	Date          string          `db:"date"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
