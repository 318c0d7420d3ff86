package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User categories mirror the platform's audience split.
const (
	CategoryAdult = "adult"
	CategoryYoung = "young"
	CategoryChild = "child"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryAdult, CategoryYoung, CategoryChild:
		return true
	}
	return false
}

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Surname      string        `bson:"surname" json:"surname"`
	Age          int           `bson:"age,omitempty" json:"age"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"`
	Category     string        `bson:"category" json:"category"`
	Admin        bool          `bson:"admin" json:"admin"`

	// TwoFactorCode is only populated while a challenge is pending and is
	// cleared atomically when the code is consumed.
	TwoFactorCode      string `bson:"twoFactorCode,omitempty" json:"-"`
	TwoFactorExpiresAt int64  `bson:"twoFactorExpiresAt,omitempty" json:"-"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"`
}

// UserProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type UserProfileUpdate struct {
	Name         *string
	Surname      *string
	Age          *int
	Category     *string
	PasswordHash *string
}
