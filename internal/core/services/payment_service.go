package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gustav-stromberg-tln/fxpayment/internal/apperrors"
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	portsrepo "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/repositories"
	portssvc "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/services"
	"github.com/gustav-stromberg-tln/fxpayment/internal/dto"
	"github.com/gustav-stromberg-tln/fxpayment/internal/utils"
	"github.com/google/uuid"
)

// PaymentService coordinates idempotent payment creation and the payment
// read path. It holds no mutual-exclusion state of its own: the at-most-one
// row per idempotency key guarantee comes from the store's uniqueness
// constraint, and a lost race is resolved by re-reading the winner's row.
type PaymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
	feeSvc      portssvc.FeeCalcSvc
	idemCache   *IdempotencyCache
	logger      *slog.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	currencySvc portssvc.CurrencySvcFacade,
	feeSvc portssvc.FeeCalcSvc,
	idemCache *IdempotencyCache,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		currencySvc: currencySvc,
		feeSvc:      feeSvc,
		idemCache:   idemCache,
		logger:      logger,
	}
}

// CreatePayment creates a payment exactly once per idempotency key. A
// repeated key replays the original creation's result with created=false.
// A uniqueness violation on insert means a concurrent attempt won the race;
// the attempt is re-run once so its fresh lookup finds the winner's row. A
// second violation within the same logical request is not an expected
// operating condition and fails as a processing error.
func (s *PaymentService) CreatePayment(ctx context.Context, idempotencyKey string, req dto.CreatePaymentRequest) (*domain.Payment, bool, error) {
	payment, created, err := s.attempt(ctx, idempotencyKey, req)
	if err == nil || !errors.Is(err, apperrors.ErrDuplicate) {
		return payment, created, err
	}

	payment, created, err = s.attempt(ctx, idempotencyKey, req)
	if err != nil && errors.Is(err, apperrors.ErrDuplicate) {
		s.logger.Error("Idempotency retry also hit a conflict", slog.String("idempotency_key", idempotencyKey))
		return nil, false, fmt.Errorf("%w: payment could not be processed due to a conflict", apperrors.ErrProcessing)
	}
	return payment, created, err
}

// attempt is one pass of the create-or-replay protocol: lookup, then
// validate, price and insert. The raw ErrDuplicate from the insert is
// propagated untouched so CreatePayment can branch on it.
func (s *PaymentService) attempt(ctx context.Context, idempotencyKey string, req dto.CreatePaymentRequest) (*domain.Payment, bool, error) {
	existing, err := s.findExistingPayment(ctx, idempotencyKey)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		// Replay: the original request already passed validation, so no
		// re-validation and no fee calculation. Re-validating a replay could
		// reject a request that already succeeded.
		s.logger.Info("Idempotency replay",
			slog.String("idempotency_key", idempotencyKey),
			slog.String("payment_id", existing.PaymentID))
		return existing, false, nil
	}

	normalised := req.Normalised()
	currency, err := s.resolveAndValidateCurrency(ctx, normalised)
	if err != nil {
		return nil, false, err
	}

	fee, err := s.feeSvc.Calculate(normalised.Amount, currency)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	payment := domain.Payment{
		PaymentID:        uuid.NewString(),
		Amount:           utils.RoundToInternalScale(normalised.Amount),
		CurrencyCode:     normalised.CurrencyCode,
		Recipient:        normalised.Recipient,
		RecipientAccount: normalised.RecipientAccount,
		ProcessingFee:    fee,
		Status:           domain.PaymentStatusCompleted,
		IdempotencyKey:   idempotencyKey,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, false, err
		}
		s.logger.Error("Failed to persist payment",
			slog.String("idempotency_key", idempotencyKey),
			slog.String("error", err.Error()))
		return nil, false, fmt.Errorf("%w: payment could not be processed", apperrors.ErrProcessing)
	}

	// The cache is populated only after the insert is confirmed, so a cache
	// entry can never exist without a committed store row.
	s.idemCache.Put(idempotencyKey, payment)

	s.logger.Info("Payment persisted",
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("currency", payment.CurrencyCode),
		slog.String("idempotency_key", idempotencyKey))
	return &payment, true, nil
}

// findExistingPayment checks the idempotency cache first and falls back to
// the store. Returns nil without error when the key is unused.
func (s *PaymentService) findExistingPayment(ctx context.Context, idempotencyKey string) (*domain.Payment, error) {
	if payment, ok := s.idemCache.Get(idempotencyKey); ok {
		return payment, nil
	}

	payment, err := s.paymentRepo.FindPaymentByIdempotencyKey(ctx, idempotencyKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: idempotency lookup failed", apperrors.ErrProcessing)
	}
	return payment, nil
}

// resolveAndValidateCurrency loads the currency for a request and rejects an
// amount whose decimal scale exceeds the currency's display scale. The check
// is against the display scale, not the internal storage scale: it is a
// business rule about the currency's minor unit.
func (s *PaymentService) resolveAndValidateCurrency(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Currency, error) {
	currency, err := s.currencySvc.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unsupported currency code: %s", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("%w: currency lookup failed", apperrors.ErrProcessing)
	}

	if utils.Scale(req.Amount) > currency.Decimals {
		return nil, fmt.Errorf("%w: amount has too many decimal places for currency %s: maximum %d allowed",
			apperrors.ErrValidation, currency.Code, currency.Decimals)
	}
	return currency, nil
}

// ListPayments returns one page of payments, newest first, with amounts and
// fees rounded to each currency's display scale. A payment referencing a
// currency that no longer exists fails the page: orphaned rows are a
// data-integrity condition, not something to skip silently.
func (s *PaymentService) ListPayments(ctx context.Context, page, size int) (*dto.ListPaymentsResponse, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	total, err := s.paymentRepo.CountPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments in service: %w", err)
	}

	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		decimals, err := s.currencySvc.GetDecimals(ctx, payments[i].CurrencyCode)
		if err != nil {
			return nil, err
		}
		responses[i] = dto.ToPaymentResponse(&payments[i], decimals)
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}
	return &dto.ListPaymentsResponse{
		Payments:      responses,
		Page:          page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// DeletePayment soft-deletes a payment. The row stays in the table but is
// excluded from every query, the idempotency lookup included.
func (s *PaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	if err := s.paymentRepo.MarkPaymentDeleted(ctx, paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete payment in service: %w", err)
	}
	s.logger.Info("Payment soft-deleted", slog.String("payment_id", paymentID))
	return nil
}
