package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Module struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description"`
	Image       string        `bson:"image,omitempty" json:"image"`
	Order       int           `bson:"order" json:"order"`
	CreatedAt   int64         `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64         `bson:"updatedAt" json:"updatedAt"`
}

type ModuleUpdate struct {
	Name        *string
	Description *string
	Image       *string
	Order       *int
}
