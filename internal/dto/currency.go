package dto

import (
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	FeeRate    decimal.Decimal `json:"feeRate"`
	MinimumFee decimal.Decimal `json:"minimumFee"`
	Decimals   int             `json:"decimals"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:       curr.Code,
		Name:       curr.Name,
		FeeRate:    curr.FeeRate,
		MinimumFee: curr.MinimumFee,
		Decimals:   curr.Decimals,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
