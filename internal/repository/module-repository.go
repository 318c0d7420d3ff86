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

type ModuleRepository struct {
	collection *mongo.Collection
}

func NewModuleRepository(db *mongo.Database) *ModuleRepository {
	return &ModuleRepository{
		collection: db.Collection("modules"),
	}
}

func (r *ModuleRepository) Insert(ctx context.Context, module *models.Module) error {
	if module.ID.IsZero() {
		module.ID = bson.NewObjectID()
	}
	now := time.Now().Unix()
	module.CreatedAt = now
	module.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, module)
	return err
}

func (r *ModuleRepository) FindByID(ctx context.Context, id string) (*models.Module, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var module models.Module
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&module)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) FindAll(ctx context.Context) ([]models.Module, error) {
	opts := options.Find().SetSort(bson.M{"order": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	modules := []models.Module{}
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *ModuleRepository) Update(ctx context.Context, id string, upd models.ModuleUpdate) (*models.Module, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": time.Now().Unix()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var module models.Module
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&module)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) Delete(ctx context.Context, id string) error {
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
