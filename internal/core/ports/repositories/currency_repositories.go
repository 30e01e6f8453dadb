package repositories

import (
	"context"

	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
)

// CurrencyRepository defines read operations for currency data. Currencies
// are administered out of band (seed migrations), so the application surface
// is read only.
type CurrencyRepository interface {
	// FindCurrencyByCode retrieves a specific currency by its 3-letter code.
	// Returns apperrors.ErrNotFound when no such currency exists.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
