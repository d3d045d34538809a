package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vibe-gaming/registration/internal/db"
	"github.com/vibe-gaming/registration/internal/domain"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, email, email_verified, email_verification_token, consumed_token_hash,
	date_of_birth, country_code, phone_number, phone_verified, profile_picture_url,
	verification_id, verified, password_hash, is_active, created_at, updated_at`

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) CreateWithTx(ctx context.Context, tx *sqlx.Tx, user *domain.User) (int64, error) {
	const op = "repository.user.CreateWithTx"

	const query = `
	INSERT INTO users
	(name, email, email_verified, email_verification_token, date_of_birth, country_code, phone_number,
	verification_id, verified, is_active, created_at, updated_at)
	VALUES (:name, :email, :email_verified, :email_verification_token, :date_of_birth, :country_code, :phone_number,
	:verification_id, :verified, :is_active, :created_at, :updated_at)
	`

	res, err := tx.NamedExecContext(ctx, query, user)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return 0, domain.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("%s: insert user failed: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: get last insert id failed: %w", op, err)
	}

	return id, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id int64) (*domain.User, error) {
	const op = "repository.user.GetOneByID"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select user by id failed: %w", op, err)
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const op = "repository.user.GetByEmail"

	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select user by email failed: %w", op, err)
	}

	return &user, nil
}

func (r *userRepository) GetByVerificationToken(ctx context.Context, token, tokenHash string) (*domain.User, error) {
	const op = "repository.user.GetByVerificationToken"

	query := `SELECT ` + userColumns + ` FROM users
	WHERE email_verification_token = ? OR consumed_token_hash = ?
	LIMIT 1`

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, token, tokenHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%s: select user by token failed: %w", op, err)
	}

	return &user, nil
}

func (r *userRepository) ConfirmEmail(ctx context.Context, id int64, token, tokenHash string, now time.Time) (bool, error) {
	const op = "repository.user.ConfirmEmail"

	const query = `
	UPDATE users
	SET email_verified = TRUE, email_verification_token = NULL, consumed_token_hash = ?, updated_at = ?
	WHERE id = ? AND email_verified = FALSE AND email_verification_token = ?
	`

	res, err := r.db.ExecContext(ctx, query, tokenHash, now, id, token)
	if err != nil {
		return false, fmt.Errorf("%s: update user failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	return rows == 1, nil
}

func (r *userRepository) UpdateProfilePictureURL(ctx context.Context, id int64, url string, now time.Time) error {
	const op = "repository.user.UpdateProfilePictureURL"

	const query = `
	UPDATE users SET profile_picture_url = ?, updated_at = ? WHERE id = ?
	`

	res, err := r.db.ExecContext(ctx, query, url, now, id)
	if err != nil {
		return fmt.Errorf("%s: update user failed: %w", op, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: get rows affected failed: %w", op, err)
	}

	if rows == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}
