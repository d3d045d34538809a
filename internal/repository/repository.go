package repository

import (
	"context"
	"time"

	"github.com/vibe-gaming/registration/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users Users
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users: newUserRepository(db),
	}
}

type Users interface {
	CreateWithTx(ctx context.Context, tx *sqlx.Tx, user *domain.User) (int64, error)
	GetOneByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByVerificationToken finds the user whose pending token equals token
	// or whose consumed token fingerprint equals tokenHash.
	GetByVerificationToken(ctx context.Context, token, tokenHash string) (*domain.User, error)
	// ConfirmEmail flips email_verified only while token is still pending and
	// reports whether this call performed the flip.
	ConfirmEmail(ctx context.Context, id int64, token, tokenHash string, now time.Time) (bool, error)
	UpdateProfilePictureURL(ctx context.Context, id int64, url string, now time.Time) error
}
