package repository

import (
	"context"
	"errors"

	"github.com/Nazmul-4/FoodChef-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MealRepository struct {
	collection *mongo.Collection
}

func NewMealRepository(db *mongo.Database) *MealRepository {
	return &MealRepository{
		collection: db.Collection("meals"),
	}
}

func (r *MealRepository) FindAll(ctx context.Context) ([]models.Meal, error) {
	return r.find(ctx, bson.M{}, nil)
}

// FindByID returns (nil, nil) when no meal document matches.
func (r *MealRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	var meal models.Meal
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&meal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// FindTop returns the meals with the highest order counter, descending.
func (r *MealRepository) FindTop(ctx context.Context, limit int64) ([]models.Meal, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "orders", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, findOptions)
}

func (r *MealRepository) FindByChefEmail(ctx context.Context, email string) ([]models.Meal, error) {
	return r.find(ctx, bson.M{"chefEmail": email}, nil)
}

func (r *MealRepository) Create(ctx context.Context, meal *models.Meal) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, meal)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MealRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return r.collection.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *MealRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.Meal, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := []models.Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}
