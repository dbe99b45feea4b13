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

// PaymentAPI is the slice of PaymentService used by the handlers.
type PaymentAPI interface {
	CreateIntent(price float64) (string, error)
	Record(ctx context.Context, payment *models.Payment) (primitive.ObjectID, *mongo.UpdateResult, error)
	ListByEmail(ctx context.Context, email string) ([]models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
}

type PaymentController struct {
	payments PaymentAPI
}

func NewPaymentController(payments PaymentAPI) *PaymentController {
	return &PaymentController{payments: payments}
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type RecordPaymentRequest struct {
	OrderID       string  `json:"orderId" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
}

// CreatePaymentIntent asks the gateway for a client secret the frontend can
// confirm the card payment with.
func (pc *PaymentController) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	clientSecret, err := pc.payments.CreateIntent(req.Price)
	if err != nil {
		zap.L().Error("Failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment stores the confirmed payment and marks its order paid.
func (pc *PaymentController) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if _, err := primitive.ObjectIDFromHex(req.OrderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	payment := models.Payment{
		OrderID:       req.OrderID,
		TransactionID: req.TransactionID,
		Email:         req.Email,
		Amount:        req.Amount,
	}
	id, orderUpdate, err := pc.payments.Record(c.Request.Context(), &payment)
	if err != nil {
		zap.L().Error("Failed to record payment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to record payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"insertedId":    id.Hex(),
		"matchedCount":  orderUpdate.MatchedCount,
		"modifiedCount": orderUpdate.ModifiedCount,
	})
}

// GetPaymentsByEmail is self-only: a user may read only their own history.
func (pc *PaymentController) GetPaymentsByEmail(c *gin.Context) {
	email := c.Param("email")
	if !requireSelf(c, email) {
		return
	}

	payments, err := pc.payments.ListByEmail(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	payments, err := pc.payments.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
