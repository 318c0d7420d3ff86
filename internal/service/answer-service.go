package service

import (
	"context"
	"learning-service/internal/events"
	"learning-service/internal/models"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type AnswerService struct {
	answers        AnswerStore
	pages          PageStore
	eventPublisher events.Publisher
}

func NewAnswerService(answers AnswerStore, pages PageStore, eventPublisher events.Publisher) *AnswerService {
	return &AnswerService{
		answers:        answers,
		pages:          pages,
		eventPublisher: eventPublisher,
	}
}

// Record stores one user's correctness for a page. The user id always comes
// from the caller's verified claims.
func (s *AnswerService) Record(ctx context.Context, userID, pageID string, correct bool) (*models.Answer, error) {
	page, err := s.pages.FindByID(ctx, pageID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}

	userOID, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	answer := &models.Answer{
		PageID:  page.ID,
		UserID:  userOID,
		Correct: correct,
	}
	if err := s.answers.Insert(ctx, answer); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.PublishAnswerRecorded(ctx, answer.ID.Hex(), userID, pageID, correct); err != nil {
			log.Printf("Warning: failed to publish answer recorded event: %v", err)
		}
	}

	return answer, nil
}

func (s *AnswerService) ListByUser(ctx context.Context, userID string) ([]models.Answer, error) {
	return s.answers.FindByUser(ctx, userID)
}
