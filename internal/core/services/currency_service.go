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
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// allCurrenciesKey is the single cache entry holding the full currency list.
// Caching the list as one unit means it goes stale as one unit.
const allCurrenciesKey = "currencies:all"

// CurrencyCacheConfig bounds the read-through cache in front of the
// currency store.
type CurrencyCacheConfig struct {
	Enabled bool
	TTL     time.Duration
	MaxSize int
}

// CurrencyService serves currency metadata through a TTL-bounded
// read-through cache. On a hit the store is not consulted, so callers may
// observe values up to TTL stale; on a miss the loaded value is cached and
// on a store failure nothing is cached. With caching disabled every call
// passes through to the repository.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepository
	byCode       *expirable.LRU[string, domain.Currency]
	all          *expirable.LRU[string, []domain.Currency]
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository, cfg CurrencyCacheConfig) *CurrencyService {
	s := &CurrencyService{currencyRepo: currencyRepo}
	if cfg.Enabled {
		s.byCode = expirable.NewLRU[string, domain.Currency](cfg.MaxSize, nil, cfg.TTL)
		s.all = expirable.NewLRU[string, []domain.Currency](1, nil, cfg.TTL)
	}
	return s
}

// GetCurrencyByCode retrieves a currency by its 3-letter code, serving from
// cache when possible. Returns apperrors.ErrNotFound for unknown codes;
// absence is never cached.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	if s.byCode != nil {
		if currency, ok := s.byCode.Get(code); ok {
			return &currency, nil
		}
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}

	if s.byCode != nil {
		s.byCode.Add(code, *currency)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies, cached as a single collection
// entry. Callers always receive their own copy of the slice; the cached
// entry is never aliased out.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	if s.all != nil {
		if currencies, ok := s.all.Get(allCurrenciesKey); ok {
			return copyCurrencies(currencies), nil
		}
	}

	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}

	if s.all != nil {
		s.all.Add(allCurrenciesKey, currencies)
		return copyCurrencies(currencies), nil
	}
	return currencies, nil
}

func copyCurrencies(currencies []domain.Currency) []domain.Currency {
	out := make([]domain.Currency, len(currencies))
	copy(out, currencies)
	return out
}

// GetDecimals returns the display scale for a currency code. A stored
// payment referencing a currency that no longer exists is a data-integrity
// condition, so absence surfaces as a validation error rather than a plain
// not-found.
func (s *CurrencyService) GetDecimals(ctx context.Context, code string) (int, error) {
	currency, err := s.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: currency not found: %s", apperrors.ErrValidation, code)
		}
		return 0, err
	}
	return currency.Decimals, nil
}

// WarmCache loads the currency list once at startup so the first requests
// are served from cache. Failures are logged and tolerated; a cold cache
// just falls through to the store.
func (s *CurrencyService) WarmCache(ctx context.Context, logger *slog.Logger) {
	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		logger.Warn("Currency cache warmup failed", slog.String("error", err.Error()))
		return
	}
	if s.byCode != nil {
		for _, currency := range currencies {
			s.byCode.Add(currency.Code, currency)
		}
	}
	logger.Info("Currency cache warmed", slog.Int("count", len(currencies)))
}
