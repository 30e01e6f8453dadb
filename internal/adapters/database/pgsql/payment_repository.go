package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gustav-stromberg-tln/fxpayment/internal/apperrors"
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	portsrepo "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/repositories"
	"github.com/gustav-stromberg-tln/fxpayment/internal/models"
	"github.com/gustav-stromberg-tln/fxpayment/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new repository for payment data.
func NewPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, amount, currency_code, recipient, recipient_account,
		processing_fee, status, idempotency_key, created_at, updated_at, deleted`

// SavePayment inserts a payment row. The statement auto-commits, so a
// uniqueness violation on the idempotency key surfaces synchronously and is
// mapped to apperrors.ErrDuplicate for the coordinator to branch on.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	modelPayment := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (payment_id, amount, currency_code, recipient, recipient_account,
			processing_fee, status, idempotency_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.pool.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.Amount,
		modelPayment.CurrencyCode,
		modelPayment.Recipient,
		modelPayment.RecipientAccount,
		modelPayment.ProcessingFee,
		modelPayment.Status,
		modelPayment.IdempotencyKey,
		modelPayment.CreatedAt,
		modelPayment.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: payment with idempotency key %s already exists",
				apperrors.ErrDuplicate, modelPayment.IdempotencyKey)
		}
		return fmt.Errorf("failed to save payment %s: %w", modelPayment.PaymentID, err)
	}
	return nil
}

// FindPaymentByIdempotencyKey retrieves the live payment created for the
// given idempotency key.
func (r *PgxPaymentRepository) FindPaymentByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE idempotency_key = $1 AND deleted = FALSE;
	`
	modelPayment, err := r.scanPayment(r.pool.QueryRow(ctx, query, idempotencyKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by idempotency key: %w", err)
	}

	domainPayment := mapping.ToDomainPayment(modelPayment)
	return &domainPayment, nil
}

// ListPayments retrieves one page of live payments, newest first. The
// payment_id tiebreak keeps the order stable for rows created in the same
// microsecond.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, limit, offset int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE deleted = FALSE
		ORDER BY created_at DESC, payment_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		return r.scanPayment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}

// CountPayments returns the number of live payment rows.
func (r *PgxPaymentRepository) CountPayments(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payments WHERE deleted = FALSE;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}

// MarkPaymentDeleted sets the soft-delete flag on a live payment row.
func (r *PgxPaymentRepository) MarkPaymentDeleted(ctx context.Context, paymentID string) error {
	query := `
		UPDATE payments
		SET deleted = TRUE, updated_at = $2
		WHERE payment_id = $1 AND deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query, paymentID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark payment %s deleted: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PgxPaymentRepository) scanPayment(row rowScanner) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.Amount,
		&p.CurrencyCode,
		&p.Recipient,
		&p.RecipientAccount,
		&p.ProcessingFee,
		&p.Status,
		&p.IdempotencyKey,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Deleted,
	)
	return p, err
}
