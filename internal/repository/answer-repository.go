package repository

import (
	"context"
	"learning-service/internal/models"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type AnswerRepository struct {
	collection *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{
		collection: db.Collection("answers"),
	}
}

func (r *AnswerRepository) Insert(ctx context.Context, answer *models.Answer) error {
	if answer.ID.IsZero() {
		answer.ID = bson.NewObjectID()
	}
	now := time.Now().Unix()
	answer.CreatedAt = now
	answer.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, answer)
	return err
}

// FindByUser returns only the given user's answers; callers never get to
// filter by another user's id.
func (r *AnswerRepository) FindByUser(ctx context.Context, userID string) ([]models.Answer, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return []models.Answer{}, nil
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	answers := []models.Answer{}
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}
