package services

import (
	"context"

	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/Nazmul-4/FoodChef-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TopMealsLimit caps the top-meals listing.
const TopMealsLimit = 6

type MealService struct {
	meals repository.MealRepo
}

func NewMealService(meals repository.MealRepo) *MealService {
	return &MealService{meals: meals}
}

func (s *MealService) List(ctx context.Context) ([]models.Meal, error) {
	return s.meals.FindAll(ctx)
}

// Get returns (nil, nil) when the meal does not exist.
func (s *MealService) Get(ctx context.Context, id primitive.ObjectID) (*models.Meal, error) {
	return s.meals.FindByID(ctx, id)
}

func (s *MealService) Top(ctx context.Context) ([]models.Meal, error) {
	return s.meals.FindTop(ctx, TopMealsLimit)
}

func (s *MealService) ListByChef(ctx context.Context, email string) ([]models.Meal, error) {
	return s.meals.FindByChefEmail(ctx, email)
}

func (s *MealService) Create(ctx context.Context, meal *models.Meal) (primitive.ObjectID, error) {
	return s.meals.Create(ctx, meal)
}

func (s *MealService) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.meals.Delete(ctx, id)
}
