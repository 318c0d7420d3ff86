package handlers

import (
	"context"
	"learning-service/internal/models"
	"learning-service/internal/repository"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// In-memory stores used by the handler tests; they mirror the (nil, nil)
// not-found convention of the mongo repositories.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
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

func (s *fakeUserStore) pendingCode(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[email]; ok {
		return u.TwoFactorCode
	}
	return ""
}

type fakeModuleStore struct {
	mu      sync.Mutex
	modules map[string]*models.Module
}

func newFakeModuleStore() *fakeModuleStore {
	return &fakeModuleStore{modules: make(map[string]*models.Module)}
}

func (s *fakeModuleStore) Insert(ctx context.Context, module *models.Module) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	module.ID = bson.NewObjectID()
	module.CreatedAt = time.Now().Unix()
	module.UpdatedAt = module.CreatedAt
	copied := *module
	s.modules[module.ID.Hex()] = &copied
	return nil
}

func (s *fakeModuleStore) FindByID(ctx context.Context, id string) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modules[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (s *fakeModuleStore) FindAll(ctx context.Context) ([]models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Module, 0, len(s.modules))
	for _, m := range s.modules {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *fakeModuleStore) Update(ctx context.Context, id string, upd models.ModuleUpdate) (*models.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.modules[id]
	if !ok {
		return nil, nil
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.Image != nil {
		m.Image = *upd.Image
	}
	if upd.Order != nil {
		m.Order = *upd.Order
	}
	copied := *m
	return &copied, nil
}

func (s *fakeModuleStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.modules[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.modules, id)
	return nil
}

type fakePageStore struct {
	mu    sync.Mutex
	pages map[string]*models.Page
}

func newFakePageStore() *fakePageStore {
	return &fakePageStore{pages: make(map[string]*models.Page)}
}

func (s *fakePageStore) Insert(ctx context.Context, page *models.Page) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	page.ID = bson.NewObjectID()
	copied := *page
	s.pages[page.ID.Hex()] = &copied
	return nil
}

func (s *fakePageStore) FindByID(ctx context.Context, id string) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pages[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (s *fakePageStore) FindAll(ctx context.Context) ([]models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Page, 0, len(s.pages))
	for _, p := range s.pages {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *fakePageStore) FindByModule(ctx context.Context, moduleID string) ([]models.PageSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.PageSummary{}
	for _, p := range s.pages {
		if p.ModuleID.Hex() == moduleID {
			out = append(out, models.PageSummary{ID: p.ID, Name: p.Name, Order: p.Order, ModuleID: p.ModuleID})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *fakePageStore) Update(ctx context.Context, id string, upd models.PageUpdate) (*models.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pages[id]
	if !ok {
		return nil, nil
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Order != nil {
		p.Order = *upd.Order
	}
	if upd.Content0 != nil {
		p.Content0 = *upd.Content0
	}
	if upd.Content1 != nil {
		p.Content1 = *upd.Content1
	}
	if upd.Content2 != nil {
		p.Content2 = *upd.Content2
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	copied := *p
	return &copied, nil
}

func (s *fakePageStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.pages, id)
	return nil
}

type fakeAnswerStore struct {
	mu      sync.Mutex
	answers []models.Answer
}

func newFakeAnswerStore() *fakeAnswerStore {
	return &fakeAnswerStore{}
}

func (s *fakeAnswerStore) Insert(ctx context.Context, answer *models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	answer.ID = bson.NewObjectID()
	answer.CreatedAt = time.Now().Unix()
	s.answers = append(s.answers, *answer)
	return nil
}

func (s *fakeAnswerStore) FindByUser(ctx context.Context, userID string) ([]models.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Answer{}
	for _, a := range s.answers {
		if a.UserID.Hex() == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
