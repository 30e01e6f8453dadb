package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency in the domain.
type Currency struct {
	Code       string          `json:"code"`       // Primary Key (e.g., "USD")
	Name       string          `json:"name"`       // e.g., "US Dollar"
	FeeRate    decimal.Decimal `json:"feeRate"`    // Processing fee as a decimal fraction (e.g., 0.01 for 1%)
	MinimumFee decimal.Decimal `json:"minimumFee"` // Floor applied when the percentage fee falls below it
	Decimals   int             `json:"decimals"`   // Display scale: fractional digits of the currency's minor unit (0-4)
}
