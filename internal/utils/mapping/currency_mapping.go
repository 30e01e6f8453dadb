package mapping

import (
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	"github.com/gustav-stromberg-tln/fxpayment/internal/models"
)

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		Code:       m.Code,
		Name:       m.Name,
		FeeRate:    m.FeeRate,
		MinimumFee: m.MinimumFee,
		Decimals:   m.Decimals,
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
