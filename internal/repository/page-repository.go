package repository

import (
	"context"
	"errors"
	"learning-service/internal/models"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PageRepository struct {
	collection *mongo.Collection
}

func NewPageRepository(db *mongo.Database) *PageRepository {
	return &PageRepository{
		collection: db.Collection("pages"),
	}
}

func (r *PageRepository) Insert(ctx context.Context, page *models.Page) error {
	if page.ID.IsZero() {
		page.ID = bson.NewObjectID()
	}
	now := time.Now().Unix()
	page.CreatedAt = now
	page.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, page)
	return err
}

func (r *PageRepository) FindByID(ctx context.Context, id string) (*models.Page, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var page models.Page
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&page)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pages := []models.Page{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// FindByModule returns the listing projection for a module's pages.
func (r *PageRepository) FindByModule(ctx context.Context, moduleID string) ([]models.PageSummary, error) {
	oid, err := bson.ObjectIDFromHex(moduleID)
	if err != nil {
		return []models.PageSummary{}, nil
	}

	opts := options.Find().
		SetSort(bson.M{"order": 1}).
		SetProjection(bson.M{"_id": 1, "name": 1, "order": 1, "moduleId": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"moduleId": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	pages := []models.PageSummary{}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *PageRepository) Update(ctx context.Context, id string, upd models.PageUpdate) (*models.Page, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": time.Now().Unix()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}
	if upd.Content0 != nil {
		set["content0"] = *upd.Content0
	}
	if upd.Content1 != nil {
		set["content1"] = *upd.Content1
	}
	if upd.Content2 != nil {
		set["content2"] = *upd.Content2
	}
	if upd.Type != nil {
		set["type"] = *upd.Type
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var page models.Page
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&page)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

func (r *PageRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
