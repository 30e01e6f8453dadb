package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment. Payments are executed
// synchronously, so the only value a stored row can carry is Completed.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

// Payment represents a processed payment. Amount and ProcessingFee are held
// at the fixed internal scale (utils.InternalScale), never at the currency's
// display scale; display rounding happens only at the response boundary.
type Payment struct {
	PaymentID        string          `json:"paymentID"` // UUID assigned at creation
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	Recipient        string          `json:"recipient"`
	RecipientAccount string          `json:"recipientAccount"` // IBAN, normalised to upper case without whitespace
	ProcessingFee    decimal.Decimal `json:"processingFee"`
	Status           PaymentStatus   `json:"status"`
	IdempotencyKey   string          `json:"idempotencyKey"` // Unique per logical request
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Deleted          bool            `json:"deleted"` // Soft-delete flag; deleted rows are invisible to queries
}
