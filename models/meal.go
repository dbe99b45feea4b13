package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Meal struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Price       float64            `json:"price" bson:"price"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	ChefName    string             `json:"chefName,omitempty" bson:"chefName,omitempty"`
	ChefEmail   string             `json:"chefEmail" bson:"chefEmail"`
	Orders      int64              `json:"orders" bson:"orders"` // how many times this meal was ordered
}
