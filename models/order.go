package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatusPending is the lifecycle state that makes an order eligible for
// quantity-merge on a repeat add (see OrderRepository.UpsertPending).
const OrderStatusPending = "pending"

// PaymentStatusPaid is set on an order once a payment is recorded against it.
const PaymentStatusPaid = "paid"

// Order references its meal and user by loose id/email fields rather than
// ObjectID links. ChefID is a legacy alias of ChefEmail kept for documents
// written before the field rename; chef-side queries match either.
type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserEmail     string             `json:"userEmail" bson:"userEmail"`
	MealID        string             `json:"mealId" bson:"mealId"`
	MealName      string             `json:"mealName,omitempty" bson:"mealName,omitempty"`
	ChefID        string             `json:"chefId,omitempty" bson:"chefId,omitempty"`
	ChefEmail     string             `json:"chefEmail,omitempty" bson:"chefEmail,omitempty"`
	Quantity      int64              `json:"quantity" bson:"quantity"`
	Price         float64            `json:"price" bson:"price"`
	TotalPrice    float64            `json:"totalPrice" bson:"totalPrice"`
	Status        string             `json:"status" bson:"status"`
	OrderStatus   string             `json:"orderStatus,omitempty" bson:"orderStatus,omitempty"`
	OrderTime     time.Time          `json:"orderTime" bson:"orderTime"`
	PaymentStatus string             `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
}
