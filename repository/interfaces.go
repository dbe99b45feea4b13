package repository

import (
	"context"
	"time"

	"github.com/Nazmul-4/FoodChef-server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Interfaces over the Mongo repositories so services can be tested against
// doubles instead of a live store.

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*mongo.UpdateResult, error)
}

type MealRepo interface {
	FindAll(ctx context.Context) ([]models.Meal, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error)
	FindTop(ctx context.Context, limit int64) ([]models.Meal, error)
	FindByChefEmail(ctx context.Context, email string) ([]models.Meal, error)
	Create(ctx context.Context, meal *models.Meal) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type OrderRepo interface {
	UpsertPending(ctx context.Context, order *models.Order, now time.Time) (*models.Order, error)
	FindByUserEmail(ctx context.Context, email string) ([]models.Order, error)
	FindByChef(ctx context.Context, email string) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	SetOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*mongo.UpdateResult, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
	FindAll(ctx context.Context) ([]models.Payment, error)
}
