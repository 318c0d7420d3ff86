package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Answer records one user's submitted correctness for one page.
type Answer struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	PageID    bson.ObjectID `bson:"pageId" json:"page_id"`
	UserID    bson.ObjectID `bson:"userId" json:"user_id"`
	Correct   bool          `bson:"correct" json:"correct"`
	CreatedAt int64         `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64         `bson:"updatedAt" json:"updatedAt"`
}
