package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"learning-service/internal/models"
	"log"
	"math/big"
	"time"
)

// TwoFactorService owns the emailed-code challenge lifecycle: issue a code
// onto the user row, mail it, and later consume it atomically.
type TwoFactorService struct {
	users       UserStore
	mail        MailSender
	attempts    AttemptLimiter
	codeTTL     time.Duration
	maxAttempts int
}

func NewTwoFactorService(users UserStore, mail MailSender, attempts AttemptLimiter, codeTTLMinutes int64, maxAttempts int) *TwoFactorService {
	return &TwoFactorService{
		users:       users,
		mail:        mail,
		attempts:    attempts,
		codeTTL:     time.Duration(codeTTLMinutes) * time.Minute,
		maxAttempts: maxAttempts,
	}
}

// Challenge writes a fresh code with its expiry in a single update and mails
// it without blocking the caller. A newer challenge overwrites a pending one.
func (s *TwoFactorService) Challenge(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("error generating verification code: %w", err)
	}

	expiresAt := time.Now().Add(s.codeTTL).Unix()
	if err := s.users.SetTwoFactorCode(ctx, email, code, expiresAt); err != nil {
		return err
	}

	if s.mail != nil {
		go func(name, email, code string, ttl time.Duration) {
			if err := s.mail.SendVerificationCode(name, email, code, ttl); err != nil {
				log.Printf("Warning: failed to send verification code to %s: %v", email, err)
			}
		}(user.Name, user.Email, code, s.codeTTL)
	}

	return nil
}

// Verify consumes the code in one atomic match-and-clear, so a successful
// code can never be replayed. When the limiter is configured, attempts past
// the cap fail before the code is even checked.
func (s *TwoFactorService) Verify(ctx context.Context, email, code string) (*models.User, error) {
	if s.attempts != nil && s.maxAttempts > 0 {
		count, err := s.attempts.IncrAttempts(ctx, email, s.codeTTL)
		if err != nil {
			log.Printf("Warning: attempt limiter unavailable for %s: %v", email, err)
		} else if count > int64(s.maxAttempts) {
			return nil, ErrTooManyAttempts
		}
	}

	user, err := s.users.ConsumeTwoFactorCode(ctx, email, code, time.Now().Unix())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCode
	}

	if s.attempts != nil && s.maxAttempts > 0 {
		if err := s.attempts.ClearAttempts(ctx, email); err != nil {
			log.Printf("Warning: failed to clear attempt counter for %s: %v", email, err)
		}
	}

	return user, nil
}

// generateCode draws a uniform six-digit code from [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
