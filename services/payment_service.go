package services

import (
	"context"
	"time"

	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/Nazmul-4/FoodChef-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Currency is fixed; the gateway is only ever asked for USD card payments.
const Currency = "usd"

type PaymentService struct {
	payments repository.PaymentRepo
	orders   repository.OrderRepo
	gateway  PaymentIntentCreator
	tx       repository.TxRunner
}

func NewPaymentService(payments repository.PaymentRepo, orders repository.OrderRepo, gateway PaymentIntentCreator, tx repository.TxRunner) *PaymentService {
	return &PaymentService{
		payments: payments,
		orders:   orders,
		gateway:  gateway,
		tx:       tx,
	}
}

// CreateIntent converts the decimal price to integer minor units (truncating,
// matching the historical parseInt(price * 100)) and asks the gateway for a
// client secret.
func (s *PaymentService) CreateIntent(price float64) (string, error) {
	amount := int64(price * 100)
	return s.gateway.CreatePaymentIntent(amount, Currency)
}

// Record stores the payment and marks the referenced order as paid. Both
// writes run in one transaction so a recorded payment can never leave its
// order unpaid. The order's update result is returned alongside the payment
// id so the endpoint can report both writes.
func (s *PaymentService) Record(ctx context.Context, payment *models.Payment) (primitive.ObjectID, *mongo.UpdateResult, error) {
	orderID, err := primitive.ObjectIDFromHex(payment.OrderID)
	if err != nil {
		return primitive.NilObjectID, nil, err
	}

	payment.CreatedAt = time.Now().UTC()

	var paymentID primitive.ObjectID
	var orderUpdate *mongo.UpdateResult
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.payments.Create(txCtx, payment)
		if err != nil {
			return err
		}
		paymentID = id

		orderUpdate, err = s.orders.MarkPaid(txCtx, orderID, payment.TransactionID)
		return err
	})
	if err != nil {
		return primitive.NilObjectID, nil, err
	}
	return paymentID, orderUpdate, nil
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.FindByEmail(ctx, email)
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.payments.FindAll(ctx)
}
