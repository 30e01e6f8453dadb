package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gustav-stromberg-tln/fxpayment/internal/apperrors"
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	portsrepo "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/repositories"
	"github.com/gustav-stromberg-tln/fxpayment/internal/models"
	"github.com/gustav-stromberg-tln/fxpayment/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCurrencyRepository struct {
	pool *pgxpool.Pool
}

// NewCurrencyRepository creates a new repository for currency data.
func NewCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT code, name, fee_rate, minimum_fee, decimals
		FROM currencies
		WHERE code = $1;
	`
	var modelCurr models.Currency
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&modelCurr.Code,
		&modelCurr.Name,
		&modelCurr.FeeRate,
		&modelCurr.MinimumFee,
		&modelCurr.Decimals,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT code, name, fee_rate, minimum_fee, decimals
		FROM currencies
		ORDER BY code;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.Code,
			&currency.Name,
			&currency.FeeRate,
			&currency.MinimumFee,
			&currency.Decimals,
		)
		return currency, err
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
