package services

import (
	"context"

	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	"github.com/gustav-stromberg-tln/fxpayment/internal/dto"
	"github.com/shopspring/decimal"
)

// FeeCalcSvc computes a processing fee from an amount and currency metadata.
// Implementations are pure and safe for unsynchronized concurrent use.
type FeeCalcSvc interface {
	Calculate(amount decimal.Decimal, currency *domain.Currency) (decimal.Decimal, error)
}

// PaymentSvcFacade defines the payment operations exposed to the HTTP layer.
type PaymentSvcFacade interface {
	// CreatePayment creates a payment exactly once per idempotency key. The
	// returned bool is true for a fresh creation and false for a replay of a
	// previously created payment.
	CreatePayment(ctx context.Context, idempotencyKey string, req dto.CreatePaymentRequest) (*domain.Payment, bool, error)

	// ListPayments returns one display-rounded page of payments, newest first.
	ListPayments(ctx context.Context, page, size int) (*dto.ListPaymentsResponse, error)

	// DeletePayment soft-deletes a payment by id.
	DeletePayment(ctx context.Context, paymentID string) error
}
