package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// --- Mocks ---

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockPaymentRepo) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Payment), args.Error(1)
}
func (m *MockPaymentRepo) FindAll(ctx context.Context) ([]models.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Payment), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreatePaymentIntent(amount int64, currency string) (string, error) {
	args := m.Called(amount, currency)
	return args.String(0), args.Error(1)
}

// passthroughTx runs the function directly; repositories joined to a real
// session are exercised the same way.
type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Tests ---

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	t.Run("whole dollars", func(t *testing.T) {
		gateway := new(MockGateway)
		svc := NewPaymentService(nil, nil, gateway, passthroughTx{})
		gateway.On("CreatePaymentIntent", int64(500), "usd").Return("cs_test_1", nil).Once()

		secret, err := svc.CreateIntent(5.00)

		assert.NoError(t, err)
		assert.Equal(t, "cs_test_1", secret)
		gateway.AssertExpectations(t)
	})

	t.Run("truncates like parseInt", func(t *testing.T) {
		gateway := new(MockGateway)
		svc := NewPaymentService(nil, nil, gateway, passthroughTx{})
		// 19.99 * 100 is 1998.99... in float64; the historical behavior
		// truncates rather than rounds.
		gateway.On("CreatePaymentIntent", int64(1998), "usd").Return("cs_test_2", nil).Once()

		_, err := svc.CreateIntent(19.99)

		assert.NoError(t, err)
		gateway.AssertExpectations(t)
	})
}

func TestRecordMarksOrderPaid(t *testing.T) {
	payments := new(MockPaymentRepo)
	orders := new(MockOrderRepo)
	svc := NewPaymentService(payments, orders, nil, passthroughTx{})

	orderID := primitive.NewObjectID()
	paymentID := primitive.NewObjectID()
	payment := &models.Payment{
		OrderID:       orderID.Hex(),
		TransactionID: "pi_123",
		Email:         "a@x.com",
		Amount:        15,
	}

	payments.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
		return p.TransactionID == "pi_123" && !p.CreatedAt.IsZero()
	})).Return(paymentID, nil).Once()
	orders.On("MarkPaid", mock.Anything, orderID, "pi_123").
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	gotID, orderUpdate, err := svc.Record(context.Background(), payment)

	assert.NoError(t, err)
	assert.Equal(t, paymentID, gotID)
	assert.Equal(t, int64(1), orderUpdate.ModifiedCount)
	payments.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestRecordRejectsMalformedOrderID(t *testing.T) {
	payments := new(MockPaymentRepo)
	orders := new(MockOrderRepo)
	svc := NewPaymentService(payments, orders, nil, passthroughTx{})

	_, _, err := svc.Record(context.Background(), &models.Payment{OrderID: "not-a-hex-id"})

	assert.Error(t, err)
	payments.AssertNotCalled(t, "Create")
	orders.AssertNotCalled(t, "MarkPaid")
}

func TestRecordPropagatesInsertFailure(t *testing.T) {
	payments := new(MockPaymentRepo)
	orders := new(MockOrderRepo)
	svc := NewPaymentService(payments, orders, nil, passthroughTx{})

	orderID := primitive.NewObjectID()
	payments.On("Create", mock.Anything, mock.Anything).
		Return(primitive.NilObjectID, errors.New("write failed")).Once()

	_, _, err := svc.Record(context.Background(), &models.Payment{OrderID: orderID.Hex(), TransactionID: "pi_x"})

	assert.Error(t, err)
	orders.AssertNotCalled(t, "MarkPaid")
}
