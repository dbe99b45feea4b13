package controllers

import (
	"context"
	"net/http"

	"github.com/Nazmul-4/FoodChef-server/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MealAPI is the slice of MealService used by the handlers.
type MealAPI interface {
	List(ctx context.Context) ([]models.Meal, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Meal, error)
	Top(ctx context.Context) ([]models.Meal, error)
	ListByChef(ctx context.Context, email string) ([]models.Meal, error)
	Create(ctx context.Context, meal *models.Meal) (primitive.ObjectID, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type MealController struct {
	meals MealAPI
}

func NewMealController(meals MealAPI) *MealController {
	return &MealController{meals: meals}
}

type CreateMealRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	ChefName    string  `json:"chefName"`
	ChefEmail   string  `json:"chefEmail" binding:"required,email"`
	Orders      int64   `json:"orders"` // counter arrives at creation; top-meals sorts on it
}

// GetMeals lists the full collection, unauthenticated and unpaginated.
func (mc *MealController) GetMeals(c *gin.Context) {
	meals, err := mc.meals.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list meals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// GetMealByID answers with a null body for absent or malformed ids; a meal
// detail that cannot be resolved is simply not found.
func (mc *MealController) GetMealByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, nil)
		return
	}

	meal, err := mc.meals.Get(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to load meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load meal"})
		return
	}
	if meal == nil {
		c.JSON(http.StatusNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// GetTopMeals returns the meals ordered most often, capped at six.
func (mc *MealController) GetTopMeals(c *gin.Context) {
	meals, err := mc.meals.Top(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list top meals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	meal := models.Meal{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		ChefName:    req.ChefName,
		ChefEmail:   req.ChefEmail,
		Orders:      req.Orders,
	}
	id, err := mc.meals.Create(c.Request.Context(), &meal)
	if err != nil {
		zap.L().Error("Failed to create meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

func (mc *MealController) GetMealsByChef(c *gin.Context) {
	meals, err := mc.meals.ListByChef(c.Request.Context(), c.Param("email"))
	if err != nil {
		zap.L().Error("Failed to list chef meals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load meals"})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid meal id"})
		return
	}

	result, err := mc.meals.Delete(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to delete meal", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete meal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}
