package repositories

import (
	"context"

	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
)

// PaymentReader defines read operations for payment data. Soft-deleted rows
// are excluded from every operation.
type PaymentReader interface {
	// FindPaymentByIdempotencyKey retrieves the payment created for the given
	// idempotency key. Returns apperrors.ErrNotFound when no live row matches.
	FindPaymentByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.Payment, error)

	// ListPayments retrieves one page of payments ordered by creation time,
	// newest first.
	ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error)

	// CountPayments returns the number of live payment rows.
	CountPayments(ctx context.Context) (int64, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePayment inserts a payment as a single auto-committed statement so a
	// uniqueness violation is observable synchronously. Returns
	// apperrors.ErrDuplicate when the idempotency key is already taken.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// MarkPaymentDeleted sets the soft-delete flag on a live payment row.
	// Returns apperrors.ErrNotFound when no live row matches.
	MarkPaymentDeleted(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// RepositoryProvider holds the concrete repositories handed to the service
// layer at wiring time.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepository
	PaymentRepo  PaymentRepositoryFacade
}
