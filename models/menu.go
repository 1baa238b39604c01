package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem represents a dish on the campus menu.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Price    float64            `bson:"price" json:"price"`
	Category string             `bson:"category" json:"category"`
	Stock    int                `bson:"stock" json:"stock"`
	ImageURL string             `bson:"image_url" json:"imageUrl"`
}
