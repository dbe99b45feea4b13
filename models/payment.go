package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderID       string             `json:"orderId" bson:"orderId"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Email         string             `json:"email" bson:"email"`
	Amount        float64            `json:"amount" bson:"amount"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
