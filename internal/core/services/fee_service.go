package services

import (
	"fmt"

	"github.com/gustav-stromberg-tln/fxpayment/internal/apperrors"
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	"github.com/gustav-stromberg-tln/fxpayment/internal/utils"
	"github.com/shopspring/decimal"
)

// FeeService computes processing fees. It is a pure calculator: no I/O, no
// shared state, safe to call concurrently without synchronization.
type FeeService struct{}

// NewFeeService creates a new FeeService.
func NewFeeService() *FeeService {
	return &FeeService{}
}

// Calculate returns the processing fee for an amount in the given currency,
// at the internal scale. The fee is the percentage fee (amount * feeRate)
// or the currency's minimum fee, whichever is greater, each rounded half-up
// to the internal scale. A nil currency or a zero fee rate yields zero.
func (s *FeeService) Calculate(amount decimal.Decimal, currency *domain.Currency) (decimal.Decimal, error) {
	if currency == nil || currency.FeeRate.IsZero() {
		return utils.ZeroInternal(), nil
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: fee amount must not be negative", apperrors.ErrValidation)
	}

	percentageFee := utils.RoundToInternalScale(amount.Mul(currency.FeeRate))
	minimumFee := utils.RoundToInternalScale(currency.MinimumFee)
	if percentageFee.LessThan(minimumFee) {
		return minimumFee, nil
	}
	return percentageFee, nil
}
