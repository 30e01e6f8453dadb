package mapping

import (
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	"github.com/gustav-stromberg-tln/fxpayment/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:        d.PaymentID,
		Amount:           d.Amount,
		CurrencyCode:     d.CurrencyCode,
		Recipient:        d.Recipient,
		RecipientAccount: d.RecipientAccount,
		ProcessingFee:    d.ProcessingFee,
		Status:           string(d.Status),
		IdempotencyKey:   d.IdempotencyKey,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		Deleted:          d.Deleted,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:        m.PaymentID,
		Amount:           m.Amount,
		CurrencyCode:     m.CurrencyCode,
		Recipient:        m.Recipient,
		RecipientAccount: m.RecipientAccount,
		ProcessingFee:    m.ProcessingFee,
		Status:           domain.PaymentStatus(m.Status),
		IdempotencyKey:   m.IdempotencyKey,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Deleted:          m.Deleted,
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to a slice of domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
