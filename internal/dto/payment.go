package dto

import (
	"strings"
	"time"

	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	"github.com/gustav-stromberg-tln/fxpayment/internal/utils"
	"github.com/shopspring/decimal"
)

// Amount bounds enforced at the request boundary.
var (
	MinPaymentAmount = decimal.RequireFromString("0.01")
	MaxPaymentAmount = decimal.NewFromInt(1_000_000)
)

// CreatePaymentRequest defines the data needed to create a payment. The
// idempotency key travels in the Idempotency-Key header, not the body.
type CreatePaymentRequest struct {
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode     string          `json:"currency" binding:"required,uppercase,len=3"`
	Recipient        string          `json:"recipient" binding:"required,min=2,max=140,recipientname"`
	RecipientAccount string          `json:"recipientAccount" binding:"required,iban"`
}

// Normalised returns a copy with the recipient name collapsed to single
// spaces and the IBAN stripped of whitespace and upper-cased, so equivalent
// requests produce identical stored rows.
func (r CreatePaymentRequest) Normalised() CreatePaymentRequest {
	return CreatePaymentRequest{
		Amount:           r.Amount,
		CurrencyCode:     r.CurrencyCode,
		Recipient:        strings.Join(strings.Fields(r.Recipient), " "),
		RecipientAccount: strings.ToUpper(strings.Join(strings.Fields(r.RecipientAccount), "")),
	}
}

// AmountInRange reports whether the amount lies within the accepted
// transaction bounds. Range checking is request-shape validation, kept out
// of the coordinator.
func (r CreatePaymentRequest) AmountInRange() bool {
	return r.Amount.GreaterThanOrEqual(MinPaymentAmount) && r.Amount.LessThanOrEqual(MaxPaymentAmount)
}

// PaymentResponse defines the data returned for a payment. Amount and
// processingFee are rounded to the currency's display scale.
type PaymentResponse struct {
	ID               string          `json:"id"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         string          `json:"currency"`
	Recipient        string          `json:"recipient"`
	RecipientAccount string          `json:"recipientAccount"`
	ProcessingFee    decimal.Decimal `json:"processingFee"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO,
// rounding the internally scaled monetary fields half-up to the currency's
// display scale.
func ToPaymentResponse(p *domain.Payment, decimals int) PaymentResponse {
	return PaymentResponse{
		ID:               p.PaymentID,
		Amount:           utils.RoundToScale(p.Amount, decimals),
		Currency:         p.CurrencyCode,
		Recipient:        p.Recipient,
		RecipientAccount: p.RecipientAccount,
		ProcessingFee:    utils.RoundToScale(p.ProcessingFee, decimals),
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
	}
}

// ListPaymentsResponse is one page of payments plus paging metadata.
type ListPaymentsResponse struct {
	Payments      []PaymentResponse `json:"payments"`
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}
