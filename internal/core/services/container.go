package services

import (
	"log/slog"

	portsrepo "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/repositories"
	portssvc "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/services"
	"github.com/gustav-stromberg-tln/fxpayment/pkg/config"
)

// NewServiceContainer wires the service layer from the repository provider
// and configuration. Caches live for the process lifetime; evicted entries
// are dropped on TTL and there is no teardown beyond process exit.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	currencySvc := NewCurrencyService(repos.CurrencyRepo, CurrencyCacheConfig{
		Enabled: cfg.CacheEnabled,
		TTL:     cfg.CurrencyCacheTTL,
		MaxSize: cfg.CurrencyCacheMaxSize,
	})
	idemCache := NewIdempotencyCache(IdempotencyCacheConfig{
		Enabled: cfg.CacheEnabled,
		TTL:     cfg.IdempotencyCacheTTL,
		MaxSize: cfg.IdempotencyCacheMaxSize,
	})
	paymentSvc := NewPaymentService(repos.PaymentRepo, currencySvc, NewFeeService(), idemCache, logger)

	return &portssvc.ServiceContainer{
		Currency: currencySvc,
		Payment:  paymentSvc,
	}
}
