package services

import (
	"context"
	"log/slog"

	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
)

// CurrencySvcFacade defines the currency metadata surface. Reads may be
// served from a TTL-bounded cache; callers must tolerate staleness until
// expiry.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetDecimals returns the display scale for a currency code. A missing
	// currency surfaces as a validation error: a stored payment referencing
	// it is a data-integrity condition, not an infrastructure fault.
	GetDecimals(ctx context.Context, code string) (int, error)

	// WarmCache pre-loads the currency list at startup. Failures are logged
	// and tolerated.
	WarmCache(ctx context.Context, logger *slog.Logger)
}
