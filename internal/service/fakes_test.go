package service

import (
	"context"
	"learning-service/internal/models"
	"learning-service/internal/repository"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) Insert(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now().Unix()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) UpdateProfile(ctx context.Context, id string, upd models.UserProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() != id {
			continue
		}
		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Surname != nil {
			u.Surname = *upd.Surname
		}
		if upd.Age != nil {
			u.Age = *upd.Age
		}
		if upd.Category != nil {
			u.Category = *upd.Category
		}
		if upd.PasswordHash != nil {
			u.PasswordHash = *upd.PasswordHash
		}
		u.UpdatedAt = time.Now().Unix()
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (s *fakeUserStore) SetTwoFactorCode(ctx context.Context, email, code string, expiresAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return repository.ErrNotFound
	}
	u.TwoFactorCode = code
	u.TwoFactorExpiresAt = expiresAt
	return nil
}

func (s *fakeUserStore) ConsumeTwoFactorCode(ctx context.Context, email, code string, now int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok || u.TwoFactorCode == "" || u.TwoFactorCode != code || u.TwoFactorExpiresAt <= now {
		return nil, nil
	}
	u.TwoFactorCode = ""
	u.TwoFactorExpiresAt = 0
	copied := *u
	return &copied, nil
}

type fakeLimiter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{counts: make(map[string]int64)}
}

func (l *fakeLimiter) IncrAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[key]++
	return l.counts[key], nil
}

func (l *fakeLimiter) ClearAttempts(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.counts, key)
	return nil
}

type sentMail struct {
	name  string
	email string
	code  string
}

type fakeMail struct {
	mu    sync.Mutex
	codes []sentMail
}

func (m *fakeMail) SendVerificationCode(name, email, code string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = append(m.codes, sentMail{name: name, email: email, code: code})
	return nil
}

func (m *fakeMail) SendWelcome(name, email string) error {
	return nil
}
