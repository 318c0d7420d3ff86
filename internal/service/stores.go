package service

import (
	"context"
	"learning-service/internal/models"
	"time"
)

// Store contracts satisfied by the mongo repositories. Lookups return
// (nil, nil) when nothing matches; hard failures come back as errors.

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, upd models.UserProfileUpdate) (*models.User, error)
	SetTwoFactorCode(ctx context.Context, email, code string, expiresAt int64) error
	ConsumeTwoFactorCode(ctx context.Context, email, code string, now int64) (*models.User, error)
}

type ModuleStore interface {
	Insert(ctx context.Context, module *models.Module) error
	FindByID(ctx context.Context, id string) (*models.Module, error)
	FindAll(ctx context.Context) ([]models.Module, error)
	Update(ctx context.Context, id string, upd models.ModuleUpdate) (*models.Module, error)
	Delete(ctx context.Context, id string) error
}

type PageStore interface {
	Insert(ctx context.Context, page *models.Page) error
	FindByID(ctx context.Context, id string) (*models.Page, error)
	FindAll(ctx context.Context) ([]models.Page, error)
	FindByModule(ctx context.Context, moduleID string) ([]models.PageSummary, error)
	Update(ctx context.Context, id string, upd models.PageUpdate) (*models.Page, error)
	Delete(ctx context.Context, id string) error
}

type AnswerStore interface {
	Insert(ctx context.Context, answer *models.Answer) error
	FindByUser(ctx context.Context, userID string) ([]models.Answer, error)
}

// AttemptLimiter counts verification attempts per account. A nil limiter
// means unlimited attempts, which is the default behavior.
type AttemptLimiter interface {
	IncrAttempts(ctx context.Context, key string, ttl time.Duration) (int64, error)
	ClearAttempts(ctx context.Context, key string) error
}

// MailSender delivers the outbound mails. Delivery is fire-and-forget:
// callers run sends in a goroutine and only log failures.
type MailSender interface {
	SendVerificationCode(name, email, code string, ttl time.Duration) error
	SendWelcome(name, email string) error
}
