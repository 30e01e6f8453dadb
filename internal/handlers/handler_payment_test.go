package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gustav-stromberg-tln/fxpayment/internal/apperrors"
	"github.com/gustav-stromberg-tln/fxpayment/internal/core/domain"
	portssvc "github.com/gustav-stromberg-tln/fxpayment/internal/core/ports/services"
	"github.com/gustav-stromberg-tln/fxpayment/internal/dto"
	"github.com/gustav-stromberg-tln/fxpayment/internal/handlers"
	"github.com/gustav-stromberg-tln/fxpayment/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, idempotencyKey string, req dto.CreatePaymentRequest) (*domain.Payment, bool, error) {
	args := m.Called(ctx, idempotencyKey, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Bool(1), args.Error(2)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, page, size int) (*dto.ListPaymentsResponse, error) {
	args := m.Called(ctx, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPaymentsResponse), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetDecimals(ctx context.Context, code string) (int, error) {
	args := m.Called(ctx, code)
	return args.Int(0), args.Error(1)
}

func (m *MockCurrencyService) WarmCache(ctx context.Context, logger *slog.Logger) {}

// --- Test Suite ---
type PaymentHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockPaymentService *MockPaymentService
	mockCurrencySvc    *MockCurrencyService
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterCustomValidations())

	suite.router = gin.New()
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockCurrencySvc = new(MockCurrencyService)

	noopRateLimit := func(c *gin.Context) { c.Next() }
	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPaymentRoutes(v1, suite.mockPaymentService, suite.mockCurrencySvc, noopRateLimit)
}

func (suite *PaymentHandlerTestSuite) performRequest(method, path, idempotencyKey string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"amount":           1000,
		"currency":         "USD",
		"recipient":        "John Doe",
		"recipientAccount": "DE89370400440532013000",
	}
}

func completedPayment(key string) *domain.Payment {
	now := time.Now().UTC()
	return &domain.Payment{
		PaymentID:        uuid.NewString(),
		Amount:           decimal.RequireFromString("1000.0000"),
		CurrencyCode:     "USD",
		Recipient:        "John Doe",
		RecipientAccount: "DE89370400440532013000",
		ProcessingFee:    decimal.RequireFromString("10.0000"),
		Status:           domain.PaymentStatusCompleted,
		IdempotencyKey:   key,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_Created() {
	key := uuid.NewString()
	payment := completedPayment(key)

	suite.mockPaymentService.On("CreatePayment", mock.Anything, key, mock.AnythingOfType("dto.CreatePaymentRequest")).
		Return(payment, true, nil).Once()
	suite.mockCurrencySvc.On("GetDecimals", mock.Anything, "USD").Return(2, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", key, validBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(payment.PaymentID, resp.ID)
	suite.True(resp.Amount.Equal(decimal.RequireFromString("1000")), "got %s", resp.Amount)
	suite.True(resp.ProcessingFee.Equal(decimal.RequireFromString("10")), "got %s", resp.ProcessingFee)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_Replayed() {
	key := uuid.NewString()
	payment := completedPayment(key)

	suite.mockPaymentService.On("CreatePayment", mock.Anything, key, mock.AnythingOfType("dto.CreatePaymentRequest")).
		Return(payment, false, nil).Once()
	suite.mockCurrencySvc.On("GetDecimals", mock.Anything, "USD").Return(2, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", key, validBody())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(payment.PaymentID, resp.ID)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_MissingIdempotencyKey() {
	w := suite.performRequest(http.MethodPost, "/api/v1/payments", "", validBody())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_MalformedIdempotencyKey() {
	w := suite.performRequest(http.MethodPost, "/api/v1/payments", "not-a-uuid", validBody())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_InvalidIBAN() {
	body := validBody()
	body["recipientAccount"] = "NOT-AN-IBAN"

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", uuid.NewString(), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_WellFormedIBANWithBadChecksum() {
	body := validBody()
	// Right shape and length for DE, but the check digits do not verify.
	body["recipientAccount"] = "DE00370400440532013000"

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", uuid.NewString(), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_RecipientWithDigitsRejected() {
	body := validBody()
	body["recipient"] = "John Doe 3rd"

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", uuid.NewString(), body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_AmountAboveMaximum() {
	body := validBody()
	body["amount"] = 1000001

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", uuid.NewString(), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_UnsupportedCurrency() {
	key := uuid.NewString()
	body := validBody()
	body["currency"] = "ZZZ"

	suite.mockPaymentService.On("CreatePayment", mock.Anything, key, mock.AnythingOfType("dto.CreatePaymentRequest")).
		Return(nil, false, fmt.Errorf("%w: unsupported currency code: ZZZ", apperrors.ErrValidation)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", key, body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_ProcessingFailure() {
	key := uuid.NewString()

	suite.mockPaymentService.On("CreatePayment", mock.Anything, key, mock.AnythingOfType("dto.CreatePaymentRequest")).
		Return(nil, false, fmt.Errorf("%w: payment could not be processed due to a conflict", apperrors.ErrProcessing)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/payments", key, validBody())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestListPayments_Success() {
	expected := &dto.ListPaymentsResponse{
		Payments: []dto.PaymentResponse{
			{ID: uuid.NewString(), Amount: decimal.RequireFromString("1000.00"), Currency: "USD"},
		},
		Page:          0,
		PageSize:      20,
		TotalElements: 1,
		TotalPages:    1,
	}
	suite.mockPaymentService.On("ListPayments", mock.Anything, 0, 20).Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/payments", "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Payments, 1)
	suite.Equal(int64(1), resp.TotalElements)
}

func (suite *PaymentHandlerTestSuite) TestListPayments_PageSizeTooLarge() {
	w := suite.performRequest(http.MethodGet, "/api/v1/payments?size=101", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "ListPayments", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestListPayments_NegativePage() {
	w := suite.performRequest(http.MethodGet, "/api/v1/payments?page=-1", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestDeletePayment_Success() {
	paymentID := uuid.NewString()
	suite.mockPaymentService.On("DeletePayment", mock.Anything, paymentID).Return(nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/payments/"+paymentID, "", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestDeletePayment_NotFound() {
	paymentID := uuid.NewString()
	suite.mockPaymentService.On("DeletePayment", mock.Anything, paymentID).Return(apperrors.ErrNotFound).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/payments/"+paymentID, "", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func TestRegisterRoutes_MalformedRateLimitFallsBack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterCustomValidations())

	mockPayment := new(MockPaymentService)
	mockCurrency := new(MockCurrencyService)

	r := gin.New()
	handlers.RegisterRoutes(r, &config.Config{RateLimit: "not-a-rate"}, &portssvc.ServiceContainer{
		Currency: mockCurrency,
		Payment:  mockPayment,
	})

	key := uuid.NewString()
	mockPayment.On("CreatePayment", mock.Anything, key, mock.AnythingOfType("dto.CreatePaymentRequest")).
		Return(completedPayment(key), true, nil).Once()
	mockCurrency.On("GetDecimals", mock.Anything, "USD").Return(2, nil).Once()

	body, err := json.Marshal(validBody())
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", key)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
