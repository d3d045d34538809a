package domain

import (
	"database/sql"
	"time"
)

type User struct {
	ID                     int64          `db:"id" json:"id"`
	Name                   string         `db:"name" json:"name"`
	Email                  string         `db:"email" json:"email"`
	EmailVerified          bool           `db:"email_verified" json:"email_verified"`
	EmailVerificationToken sql.NullString `db:"email_verification_token" json:"-"`
	ConsumedTokenHash      sql.NullString `db:"consumed_token_hash" json:"-"`
	DateOfBirth            time.Time      `db:"date_of_birth" json:"date_of_birth"`
	CountryCode            string         `db:"country_code" json:"country_code"`
	PhoneNumber            string         `db:"phone_number" json:"phone_number"`
	PhoneVerified          bool           `db:"phone_verified" json:"phone_verified"`
	ProfilePictureURL      sql.NullString `db:"profile_picture_url" json:"profile_picture_url"`
	VerificationID         sql.NullString `db:"verification_id" json:"verification_id"`
	Verified               bool           `db:"verified" json:"verified"`
	PasswordHash           sql.NullString `db:"password_hash" json:"-"`
	IsActive               bool           `db:"is_active" json:"is_active"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// VerificationExpiresAt is the moment the pending email verification token
// stops being accepted. Tokens are issued together with the user row.
func (u *User) VerificationExpiresAt(ttl time.Duration) time.Time {
	return u.CreatedAt.Add(ttl)
}
