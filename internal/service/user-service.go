package service

import (
	"context"
	"fmt"
	"learning-service/internal/events"
	"learning-service/internal/models"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps the credential check constant-time-ish when the email is
// unknown: the bcrypt compare runs either way.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("learning-service-dummy"), bcrypt.DefaultCost)

type UserService struct {
	users          UserStore
	mail           MailSender
	eventPublisher events.Publisher
}

func NewUserService(users UserStore, mail MailSender, eventPublisher events.Publisher) *UserService {
	return &UserService{
		users:          users,
		mail:           mail,
		eventPublisher: eventPublisher,
	}
}

// Register hashes the password and inserts the user. The welcome mail and
// the registered event are fire-and-forget.
func (us *UserService) Register(ctx context.Context, user *models.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Admin = false

	if err := us.users.Insert(ctx, user); err != nil {
		return err
	}
	log.Printf("New user registered: %s", user.Email)

	if us.mail != nil {
		go func(name, email string) {
			if err := us.mail.SendWelcome(name, email); err != nil {
				log.Printf("Warning: failed to send welcome email to %s: %v", email, err)
			}
		}(user.Name, user.Email)
	}

	if us.eventPublisher != nil {
		if err := us.eventPublisher.PublishUserRegistered(ctx, user.ID.Hex(), user.Name, user.Email); err != nil {
			log.Printf("Warning: failed to publish user registered event: %v", err)
		}
	}

	return nil
}

// Authenticate checks email+password. Unknown email and wrong password are
// deliberately indistinguishable to the caller.
func (us *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := us.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return us.users.FindByID(ctx, id)
}

// UpdateProfile applies the provided fields; a non-empty newPassword is
// re-hashed before storage.
func (us *UserService) UpdateProfile(ctx context.Context, id string, upd models.UserProfileUpdate, newPassword string) (*models.User, error) {
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		hashed := string(hash)
		upd.PasswordHash = &hashed
	}
	return us.users.UpdateProfile(ctx, id, upd)
}
