package events

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"
)

type EventType string

const (
	// UserRegistered is published when a new account is created
	UserRegistered EventType = "user.registered"
	// AnswerRecorded is published when a user submits a page answer
	AnswerRecorded EventType = "answer.recorded"
)

type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp int64     `json:"timestamp"`
	Version   string    `json:"version"`
}

type UserRegisteredEvent struct {
	BaseEvent
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

func NewUserRegisteredEvent(userID, name, email string) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseEvent: BaseEvent{
			ID:        generateEventID(),
			Type:      UserRegistered,
			Timestamp: time.Now().Unix(),
			Version:   "1.0",
		},
		UserID: userID,
		Name:   name,
		Email:  email,
	}
}

func (e *UserRegisteredEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

type AnswerRecordedEvent struct {
	BaseEvent
	AnswerID string `json:"answer_id"`
	UserID   string `json:"user_id"`
	PageID   string `json:"page_id"`
	Correct  bool   `json:"correct"`
}

func NewAnswerRecordedEvent(answerID, userID, pageID string, correct bool) *AnswerRecordedEvent {
	return &AnswerRecordedEvent{
		BaseEvent: BaseEvent{
			ID:        generateEventID(),
			Type:      AnswerRecorded,
			Timestamp: time.Now().Unix(),
			Version:   "1.0",
		},
		AnswerID: answerID,
		UserID:   userID,
		PageID:   pageID,
		Correct:  correct,
	}
}

// ToJSON serializes the event to JSON
func (e *AnswerRecordedEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// generateEventID generates a unique ID for an event
func generateEventID() string {
	buf := make([]byte, 3)
	rand.Read(buf)
	return time.Now().Format("20060102150405") + "-" + hex.EncodeToString(buf)
}
