package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Page types drive how the frontend renders a page inside a module.
const (
	PageTypeIntro = "intro"
	PageTypeInfo  = "info"
	PageTypeQuiz  = "quiz"
	PageTypeTest  = "test"
)

func ValidPageType(t string) bool {
	switch t {
	case PageTypeIntro, PageTypeInfo, PageTypeQuiz, PageTypeTest:
		return true
	}
	return false
}

type Page struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id"`
	ModuleID bson.ObjectID `bson:"moduleId" json:"module_id"`
	Name     string        `bson:"name" json:"name"`
	Order    int           `bson:"order" json:"order"`
	Content0 string        `bson:"content0,omitempty" json:"content0"`
	Content1 string        `bson:"content1,omitempty" json:"content1"`
	Content2 string        `bson:"content2,omitempty" json:"content2"`
	Type     string        `bson:"type" json:"type"`

	CreatedAt int64 `bson:"createdAt" json:"createdAt"`
	UpdatedAt int64 `bson:"updatedAt" json:"updatedAt"`
}

// PageSummary is the projection returned when listing a module's pages.
type PageSummary struct {
	ID       bson.ObjectID `bson:"_id" json:"id"`
	Name     string        `bson:"name" json:"name"`
	Order    int           `bson:"order" json:"order"`
	ModuleID bson.ObjectID `bson:"moduleId" json:"module_id"`
}

type PageUpdate struct {
	Name     *string
	Order    *int
	Content0 *string
	Content1 *string
	Content2 *string
	Type     *string
}
