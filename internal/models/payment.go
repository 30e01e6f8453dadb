package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table. Amount and ProcessingFee
// are stored as numeric(19,4).
type Payment struct {
	PaymentID        string          `json:"paymentID"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	Recipient        string          `json:"recipient"`
	RecipientAccount string          `json:"recipientAccount"`
	ProcessingFee    decimal.Decimal `json:"processingFee"`
	Status           string          `json:"status"`
	IdempotencyKey   string          `json:"idempotencyKey"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Deleted          bool            `json:"deleted"`
}
