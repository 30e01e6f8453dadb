package models

import "github.com/shopspring/decimal"

// Currency represents a row of the currencies table.
type Currency struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	FeeRate    decimal.Decimal `json:"feeRate"`
	MinimumFee decimal.Decimal `json:"minimumFee"`
	Decimals   int             `json:"decimals"`
}
