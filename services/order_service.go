package services

import (
	"context"
	"time"

	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/Nazmul-4/FoodChef-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderService struct {
	orders repository.OrderRepo
}

func NewOrderService(orders repository.OrderRepo) *OrderService {
	return &OrderService{orders: orders}
}

// Place stamps the incoming order as pending with the current time and hands
// it to the store's merge-or-insert upsert. At most one pending order exists
// per (userEmail, mealId) pair; a repeat add accumulates quantity and price
// on the existing document instead of creating a duplicate.
func (s *OrderService) Place(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.Status = models.OrderStatusPending
	return s.orders.UpsertPending(ctx, order, time.Now().UTC())
}

func (s *OrderService) ListByUser(ctx context.Context, email string) ([]models.Order, error) {
	return s.orders.FindByUserEmail(ctx, email)
}

func (s *OrderService) ListByChef(ctx context.Context, email string) ([]models.Order, error) {
	return s.orders.FindByChef(ctx, email)
}

// Get returns (nil, nil) when the order does not exist.
func (s *OrderService) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *OrderService) Cancel(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.orders.Delete(ctx, id)
}

func (s *OrderService) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return s.orders.SetOrderStatus(ctx, id, status)
}
