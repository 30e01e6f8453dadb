package pgsql

import (
	portsrepo "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the pgx-backed repositories over one shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: NewCurrencyRepository(dbPool),
		PaymentRepo:  NewPaymentRepository(dbPool),
	}
}
