package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a row in the transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	UserID          string          `db:"user_id"`
	DareID          *string         `db:"dare_id"`
	Amount          decimal.Decimal `db:"amount"`
	TransactionType string          `db:"transaction_type"`
	Description     string          `db:"description"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Notification represents a row in the notifications table.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Title          string    `db:"title"`
	Message        string    `db:"message"`
	Type           string    `db:"type"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
