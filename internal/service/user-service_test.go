package service

import (
	"context"
	"errors"
	"learning-service/internal/models"
	"learning-service/internal/repository"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func newTestUser(email string) *models.User {
	return &models.User{
		Name:     "Ana",
		Surname:  "Garcia",
		Age:      30,
		Email:    email,
		Category: models.CategoryAdult,
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, nil)

	user := newTestUser("ana@example.com")
	if err := svc.Register(context.Background(), user, "hunter22"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	stored, _ := store.FindByEmail(context.Background(), "ana@example.com")
	if stored == nil {
		t.Fatal("user was not stored")
	}
	if stored.PasswordHash == "hunter22" {
		t.Error("password was stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if stored.Admin {
		t.Error("newly registered user must not be admin")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, nil)

	if err := svc.Register(context.Background(), newTestUser("dup@example.com"), "password1"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	err := svc.Register(context.Background(), newTestUser("dup@example.com"), "password2")
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, nil)
	if err := svc.Register(context.Background(), newTestUser("ana@example.com"), "hunter22"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid credentials", "ana@example.com", "hunter22", nil},
		{"wrong password", "ana@example.com", "wrong", ErrInvalidCredentials},
		{"unknown email", "nobody@example.com", "hunter22", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.Authenticate(context.Background(), tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && user == nil {
				t.Fatal("expected user, got nil")
			}
		})
	}
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, nil)

	user := newTestUser("ana@example.com")
	if err := svc.Register(context.Background(), user, "oldpassword"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	stored, _ := store.FindByEmail(context.Background(), "ana@example.com")

	name := "Anita"
	updated, err := svc.UpdateProfile(context.Background(), stored.ID.Hex(), models.UserProfileUpdate{Name: &name}, "newpassword")
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Anita" {
		t.Errorf("expected name Anita, got %s", updated.Name)
	}

	if _, err := svc.Authenticate(context.Background(), "ana@example.com", "newpassword"); err != nil {
		t.Errorf("new password does not authenticate: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ana@example.com", "oldpassword"); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password still authenticates after change")
	}
}
