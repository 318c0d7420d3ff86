package events

import (
	"context"
	"log"
)

type Publisher interface {
	PublishUserRegistered(ctx context.Context, userID, name, email string) error
	PublishAnswerRecorded(ctx context.Context, answerID, userID, pageID string, correct bool) error

	// Close closes the publisher and releases resources
	Close() error
}

type EventPublisher struct {
	rabbitMQ *RabbitMQClient
	enabled  bool
}

func NewEventPublisher(rabbitURI string) (*EventPublisher, error) {
	if rabbitURI == "" {
		log.Println("Warning: RabbitMQ URI is empty, event publishing is disabled")
		return &EventPublisher{
			rabbitMQ: nil,
			enabled:  false,
		}, nil
	}

	client, err := NewRabbitMQClient(rabbitURI)
	if err != nil {
		return nil, err
	}

	if err := client.setupExchangesAndQueues(); err != nil {
		client.Close()
		return nil, err
	}

	return &EventPublisher{
		rabbitMQ: client,
		enabled:  true,
	}, nil
}

func (p *EventPublisher) PublishUserRegistered(ctx context.Context, userID, name, email string) error {
	if !p.enabled {
		return nil
	}

	event := NewUserRegisteredEvent(userID, name, email)
	eventData, err := event.ToJSON()
	if err != nil {
		return err
	}

	if err := p.rabbitMQ.PublishEvent("learning-events", string(UserRegistered), eventData); err != nil {
		return err
	}

	log.Printf("Published UserRegistered event for user ID: %s", userID)
	return nil
}

func (p *EventPublisher) PublishAnswerRecorded(ctx context.Context, answerID, userID, pageID string, correct bool) error {
	if !p.enabled {
		return nil
	}

	event := NewAnswerRecordedEvent(answerID, userID, pageID, correct)
	eventData, err := event.ToJSON()
	if err != nil {
		return err
	}

	if err := p.rabbitMQ.PublishEvent("learning-events", string(AnswerRecorded), eventData); err != nil {
		return err
	}

	log.Printf("Published AnswerRecorded event for answer ID: %s", answerID)
	return nil
}

// Close releases resources
func (p *EventPublisher) Close() error {
	if !p.enabled || p.rabbitMQ == nil {
		return nil
	}
	return p.rabbitMQ.Close()
}
