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

// OrderAPI is the slice of OrderService used by the handlers.
type OrderAPI interface {
	Place(ctx context.Context, order *models.Order) (*models.Order, error)
	ListByUser(ctx context.Context, email string) ([]models.Order, error)
	ListByChef(ctx context.Context, email string) ([]models.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Cancel(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
}

type OrderController struct {
	orders OrderAPI
}

func NewOrderController(orders OrderAPI) *OrderController {
	return &OrderController{orders: orders}
}

type PlaceOrderRequest struct {
	UserEmail string  `json:"userEmail" binding:"required,email"`
	MealID    string  `json:"mealId" binding:"required"`
	MealName  string  `json:"mealName"`
	ChefID    string  `json:"chefId"`
	ChefEmail string  `json:"chefEmail"`
	Quantity  int64   `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder places a new pending order or, when the user already has a
// pending one for the same meal, merges the quantities into it. The merged
// document is returned either way.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order := models.Order{
		UserEmail: req.UserEmail,
		MealID:    req.MealID,
		MealName:  req.MealName,
		ChefID:    req.ChefID,
		ChefEmail: req.ChefEmail,
		Quantity:  req.Quantity,
		Price:     req.Price,
	}
	placed, err := oc.orders.Place(c.Request.Context(), &order)
	if err != nil {
		zap.L().Error("Failed to place order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to place order"})
		return
	}
	c.JSON(http.StatusOK, placed)
}

// GetOrders lists the caller's own orders. Asking for someone else's email is
// forbidden; asking for none at all yields an empty list.
func (oc *OrderController) GetOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.Order{})
		return
	}
	if !requireSelf(c, email) {
		return
	}

	orders, err := oc.orders.ListByUser(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	order, err := oc.orders.Get(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to load order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load order"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, nil)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	result, err := oc.orders.Cancel(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Failed to cancel order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to cancel order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": result.DeletedCount})
}

// GetChefOrders lists every order routed to the chef, matching both the
// legacy chefId field and the current chefEmail one.
func (oc *OrderController) GetChefOrders(c *gin.Context) {
	orders, err := oc.orders.ListByChef(c.Request.Context(), c.Param("chefEmail"))
	if err != nil {
		zap.L().Error("Failed to list chef orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus advances the workflow state. Any string is accepted.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := oc.orders.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		zap.L().Error("Failed to update order status", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}
