package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gustav-stromberg-tln/fxpayment/internal/apperrors"
	portssvc "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/services"
	"github.com/gustav-stromberg-tln/fxpayment/internal/dto"
	"github.com/gustav-stromberg-tln/fxpayment/internal/middleware"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	defaultPageSize      = 20
	maxPageSize          = 100
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService  portssvc.PaymentSvcFacade
	currencyService portssvc.CurrencySvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvcFacade, cs portssvc.CurrencySvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService:  ps,
		currencyService: cs,
	}
}

// RegisterPaymentRoutes registers routes related to payments. Exported so
// handler tests can register against a bare router.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade, currencyService portssvc.CurrencySvcFacade, rateLimit gin.HandlerFunc) {
	h := newPaymentHandler(paymentService, currencyService)

	payments := rg.Group("/payments")
	{
		payments.POST("", rateLimit, h.createPayment)
		payments.GET("", h.listPayments)
		payments.DELETE("/:paymentID", h.deletePayment)
	}
}

// createPayment godoc
// @Summary Create a payment
// @Description Creates a payment exactly once per Idempotency-Key; a repeated key replays the original result
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   Idempotency-Key header string true "Client-supplied idempotency key (UUID)"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse "Created"
// @Success 200 {object} dto.PaymentResponse "Replayed"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Payment could not be processed"
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	idempotencyKey := c.GetHeader(idempotencyKeyHeader)
	if _, err := uuid.Parse(idempotencyKey); err != nil {
		logger.Warn("Invalid or missing Idempotency-Key header")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header must be a valid UUID"})
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if !req.AmountInRange() {
		logger.Warn("Payment amount out of range", slog.String("amount", req.Amount.String()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be between " +
			dto.MinPaymentAmount.String() + " and " + dto.MaxPaymentAmount.String()})
		return
	}

	logger = logger.With(slog.String("idempotency_key", idempotencyKey))
	logger.Info("Received payment request", slog.String("currency", req.CurrencyCode))

	payment, created, err := h.paymentService.CreatePayment(c.Request.Context(), idempotencyKey, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrProcessing) {
			logger.Error("Failed to process payment", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Payment could not be processed"})
		} else {
			logger.Error("Failed to create payment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		}
		return
	}

	// Display rounding only; replay semantics are untouched by this lookup.
	decimals, err := h.currencyService.GetDecimals(c.Request.Context(), payment.CurrencyCode)
	if err != nil {
		logger.Error("Failed to resolve display decimals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment"})
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	logger.Info("Payment request completed",
		slog.String("payment_id", payment.PaymentID),
		slog.Bool("created", created))
	c.JSON(status, dto.ToPaymentResponse(payment, decimals))
}

// listPayments godoc
// @Summary List payments
// @Description Retrieves one page of payments, newest first, display-rounded per currency
// @Tags payments
// @Produce  json
// @Param   page query int false "Page index (0-based)" default(0)
// @Param   size query int false "Page size (1-100)" default(20)
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid paging parameters"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a non-negative integer"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 1 || size > maxPageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 1 and " + strconv.Itoa(maxPageSize)})
		return
	}

	resp, err := h.paymentService.ListPayments(c.Request.Context(), page, size)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Payment list references a missing currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list payments from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payments"})
		return
	}

	logger.Info("Payments listed", slog.Int("count", len(resp.Payments)))
	c.JSON(http.StatusOK, resp)
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Soft-deletes a payment; the row is kept but excluded from all queries
// @Tags payments
// @Param   paymentID path string true "Payment ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to delete payment"
// @Router /payments/{paymentID} [delete]
func (h *paymentHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Payment not found for delete", slog.String("payment_id", paymentID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		logger.Error("Failed to delete payment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment"})
		return
	}

	c.Status(http.StatusNoContent)
}
