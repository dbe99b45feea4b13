package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Nazmul-4/FoodChef-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// pendingOrderIndex is the partial unique index behind the at-most-one
// pending order per (userEmail, mealId) rule. Without it two concurrent
// first adds both observe no match and both insert; with it the loser gets a
// duplicate-key error and UpsertPending retries against the winner's document.
func pendingOrderIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{
			{Key: "userEmail", Value: 1},
			{Key: "mealId", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": models.OrderStatusPending}),
	}
}

// EnsureIndexes creates the pending-order index. Call once at startup.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, pendingOrderIndex())
	return err
}

// UpsertPending inserts a pending order for (userEmail, mealId) or, when one
// already exists, folds the incoming quantity and price into it. The whole
// merge runs as a single FindOneAndUpdate with an aggregation-pipeline
// update; the partial unique index from EnsureIndexes closes the remaining
// first-insert race.
//
// totalPrice is recomputed as incoming unit price x summed quantity while the
// price field accumulates; that mirrors the historical behavior even though
// the two disagree when the unit price changes between merges.
func (r *OrderRepository) UpsertPending(ctx context.Context, order *models.Order, now time.Time) (*models.Order, error) {
	filter := bson.M{
		"userEmail": order.UserEmail,
		"mealId":    order.MealID,
		"status":    models.OrderStatusPending,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var merged models.Order
	err := r.collection.FindOneAndUpdate(ctx, filter, pendingMergePipeline(order, now), opts).Decode(&merged)
	if mongo.IsDuplicateKeyError(err) {
		// lost the insert race; the winner's document matches the filter now,
		// so the retry merges into it
		err = r.collection.FindOneAndUpdate(ctx, filter, pendingMergePipeline(order, now), opts).Decode(&merged)
	}
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// pendingMergePipeline builds the update applied by UpsertPending. On upsert
// the equality fields of the filter seed the new document; everything else is
// written here, with $ifNull keeping insert-only fields stable across merges.
func pendingMergePipeline(order *models.Order, now time.Time) mongo.Pipeline {
	newQuantity := bson.M{"$add": bson.A{
		bson.M{"$ifNull": bson.A{"$quantity", int64(0)}},
		order.Quantity,
	}}

	set := bson.M{
		"quantity":   newQuantity,
		"price":      bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$price", float64(0)}}, order.Price}},
		"totalPrice": bson.M{"$multiply": bson.A{order.Price, newQuantity}},
		"orderTime":  now,
	}
	if order.MealName != "" {
		set["mealName"] = bson.M{"$ifNull": bson.A{"$mealName", order.MealName}}
	}
	if order.ChefID != "" {
		set["chefId"] = bson.M{"$ifNull": bson.A{"$chefId", order.ChefID}}
	}
	if order.ChefEmail != "" {
		set["chefEmail"] = bson.M{"$ifNull": bson.A{"$chefEmail", order.ChefEmail}}
	}

	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

func (r *OrderRepository) FindByUserEmail(ctx context.Context, email string) ([]models.Order, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

// FindByChef matches both the legacy chefId field and the current chefEmail
// field; orders written before the rename only carry the former.
func (r *OrderRepository) FindByChef(ctx context.Context, email string) ([]models.Order, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"chefId": email},
		bson.M{"chefEmail": email},
	}}
	return r.find(ctx, filter)
}

// FindByID returns (nil, nil) when no order document matches.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

// SetOrderStatus overwrites the workflow state. Any string is accepted; there
// is no validated state machine.
func (r *OrderRepository) SetOrderStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"orderStatus": status}}
	return r.collection.UpdateOne(ctx, filter, update)
}

// MarkPaid stamps the order with the gateway transaction id.
func (r *OrderRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (*mongo.UpdateResult, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{
		"paymentStatus": models.PaymentStatusPaid,
		"transactionId": transactionID,
	}}
	return r.collection.UpdateOne(ctx, filter, update)
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
