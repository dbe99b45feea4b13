package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nazmul-4/FoodChef-server/middleware"
	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Mock Service ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateIntent(price float64) (string, error) {
	args := m.Called(price)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentService) Record(ctx context.Context, payment *models.Payment) (primitive.ObjectID, *mongo.UpdateResult, error) {
	args := m.Called(ctx, payment)
	if args.Get(1) == nil {
		return args.Get(0).(primitive.ObjectID), nil, args.Error(2)
	}
	return args.Get(0).(primitive.ObjectID), args.Get(1).(*mongo.UpdateResult), args.Error(2)
}
func (m *MockPaymentService) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Payment), args.Error(1)
}
func (m *MockPaymentService) List(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Payment), args.Error(1)
}

// --- Tests ---

func TestCreatePaymentIntentController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid price - returns client secret", func(t *testing.T) {
		mockService := new(MockPaymentService)
		pc := NewPaymentController(mockService)
		mockService.On("CreateIntent", 15.0).Return("cs_test_abc", nil).Once()

		router := gin.New()
		router.POST("/create-payment-intent", pc.CreatePaymentIntent)

		payload := `{"price": 15}`
		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "cs_test_abc")
		mockService.AssertExpectations(t)
	})

	t.Run("missing price - 400", func(t *testing.T) {
		mockService := new(MockPaymentService)
		pc := NewPaymentController(mockService)

		router := gin.New()
		router.POST("/create-payment-intent", pc.CreatePaymentIntent)

		req, _ := http.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "CreateIntent")
	})
}

func TestRecordPaymentController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid payment - recorded", func(t *testing.T) {
		mockService := new(MockPaymentService)
		pc := NewPaymentController(mockService)

		orderID := primitive.NewObjectID()
		paymentID := primitive.NewObjectID()
		mockService.On("Record", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.OrderID == orderID.Hex() && p.TransactionID == "pi_123"
		})).Return(paymentID, &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

		router := gin.New()
		router.POST("/payments", pc.RecordPayment)

		payload := `{"orderId": "` + orderID.Hex() + `", "transactionId": "pi_123", "email": "a@x.com", "amount": 15}`
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), paymentID.Hex())
		assert.Contains(t, recorder.Body.String(), `"modifiedCount":1`)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed order id - 400", func(t *testing.T) {
		mockService := new(MockPaymentService)
		pc := NewPaymentController(mockService)

		router := gin.New()
		router.POST("/payments", pc.RecordPayment)

		payload := `{"orderId": "nope", "transactionId": "pi_123", "email": "a@x.com", "amount": 15}`
		req, _ := http.NewRequest(http.MethodPost, "/payments", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Record")
	})
}

func TestGetPaymentsByEmailController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("own history", func(t *testing.T) {
		mockService := new(MockPaymentService)
		pc := NewPaymentController(mockService)

		payments := []models.Payment{{Email: "me@x.com", Amount: 15, TransactionID: "pi_123"}}
		mockService.On("ListByEmail", mock.Anything, "me@x.com").Return(payments, nil).Once()

		router := gin.New()
		router.GET("/payments/:email", middleware.RequireAuth(&stubVerifier{email: "me@x.com"}), pc.GetPaymentsByEmail)

		recorder, req := authedGet("/payments/me@x.com")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "pi_123")
		mockService.AssertExpectations(t)
	})

	t.Run("someone else's history - 403", func(t *testing.T) {
		mockService := new(MockPaymentService)
		pc := NewPaymentController(mockService)

		router := gin.New()
		router.GET("/payments/:email", middleware.RequireAuth(&stubVerifier{email: "me@x.com"}), pc.GetPaymentsByEmail)

		recorder, req := authedGet("/payments/other@x.com")
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
		mockService.AssertNotCalled(t, "ListByEmail")
	})
}
