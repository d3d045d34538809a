package service

import (
	"context"
	"time"

	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/domain"
	"github.com/vibe-gaming/registration/internal/identity"
	"github.com/vibe-gaming/registration/internal/repository"
	"github.com/vibe-gaming/registration/internal/storage"
	emailProvider "github.com/vibe-gaming/registration/pkg/email"
	"github.com/vibe-gaming/registration/pkg/hash"
	"github.com/vibe-gaming/registration/pkg/token"
	appvalidator "github.com/vibe-gaming/registration/pkg/validator"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
)

type Services struct {
	Users     Users
	Emails    Emails
	Countries Countries
	Health    Health
}

type Deps struct {
	Config           *config.Config
	Repos            *repository.Repositories
	Transactor       Transactor
	IdentityVerifier identity.Verifier
	Uploader         storage.Uploader
	EmailSender      emailProvider.Sender
	// EmailQueue is nil when verification emails are delivered synchronously.
	EmailQueue     EmailQueue
	TokenGenerator token.Generator
	TokenHasher    hash.Hasher
	Validator      *validator.Validate
	Clock          func() time.Time
	HealthChecks   []HealthCheck
}

func NewServices(deps Deps) *Services {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Validator == nil {
		deps.Validator = appvalidator.New()
	}

	emails := newEmailsService(deps.EmailSender, deps.EmailQueue, deps.Config)

	return &Services{
		Users: newUserService(
			deps.Repos.Users,
			deps.Transactor,
			deps.IdentityVerifier,
			deps.Uploader,
			emails,
			deps.TokenGenerator,
			deps.TokenHasher,
			deps.Validator,
			deps.Clock,
			deps.Config.Registration,
		),
		Emails:    emails,
		Countries: newCountryService(),
		Health:    newHealthService(deps.HealthChecks),
	}
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type Users interface {
	Register(ctx context.Context, form domain.RegistrationForm, upload *domain.Upload) (*domain.RegistrationResult, error)
	VerifyEmail(ctx context.Context, verificationToken string) (domain.EmailVerificationStatus, error)
}

type Emails interface {
	// SendUserVerificationEmail reports whether the email was handed off.
	SendUserVerificationEmail(ctx context.Context, input VerificationEmailInput) bool
	DeliverUserVerificationEmail(ctx context.Context, input VerificationEmailInput) error
}

type EmailQueue interface {
	EnqueueVerificationEmail(ctx context.Context, input VerificationEmailInput) error
}

type Countries interface {
	GetAll(ctx context.Context) []domain.CountryCode
}

type Health interface {
	Check(ctx context.Context) HealthReport
}
