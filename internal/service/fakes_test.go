package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/vibe-gaming/registration/internal/domain"
	"github.com/vibe-gaming/registration/internal/identity"
	emailProvider "github.com/vibe-gaming/registration/pkg/email"

	"github.com/jmoiron/sqlx"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64

	// hideExisting makes GetByEmail miss so the insert sees the conflict.
	hideExisting bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{}}
}

func (r *fakeUserRepo) CreateWithTx(_ context.Context, _ *sqlx.Tx, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return 0, domain.ErrDuplicateEntry
		}
	}

	r.nextID++
	stored := *user
	stored.ID = r.nextID
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetOneByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hideExisting {
		return nil, domain.ErrNotFound
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) GetByVerificationToken(_ context.Context, token, tokenHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (u.EmailVerificationToken.Valid && u.EmailVerificationToken.String == token) ||
			(u.ConsumedTokenHash.Valid && u.ConsumedTokenHash.String == tokenHash) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeUserRepo) ConfirmEmail(_ context.Context, id int64, token, tokenHash string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok || u.EmailVerified || !u.EmailVerificationToken.Valid || u.EmailVerificationToken.String != token {
		return false, nil
	}

	u.EmailVerified = true
	u.EmailVerificationToken.String, u.EmailVerificationToken.Valid = "", false
	u.ConsumedTokenHash.String, u.ConsumedTokenHash.Valid = tokenHash, true
	u.UpdatedAt = now
	return true, nil
}

func (r *fakeUserRepo) UpdateProfilePictureURL(_ context.Context, id int64, url string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return domain.ErrNoRowsAffected
	}
	u.ProfilePictureURL.String, u.ProfilePictureURL.Valid = url, true
	u.UpdatedAt = now
	return nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeTransactor struct{}

func (fakeTransactor) WithinTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

type fakeUploader struct {
	mu      sync.Mutex
	fail    bool
	keys    []string
	baseURL string
}

func (u *fakeUploader) Upload(_ context.Context, key string, _ []byte, _ string) (string, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.fail {
		return "", false
	}
	u.keys = append(u.keys, key)
	return u.baseURL + "/" + key, true
}

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []emailProvider.SendEmailInput
}

func (s *fakeSender) Send(input emailProvider.SendEmailInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, input)
	return nil
}

func (s *fakeSender) messages() []emailProvider.SendEmailInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]emailProvider.SendEmailInput(nil), s.sent...)
}

type fakeQueue struct {
	err    error
	queued []VerificationEmailInput
}

func (q *fakeQueue) EnqueueVerificationEmail(_ context.Context, input VerificationEmailInput) error {
	if q.err != nil {
		return q.err
	}
	q.queued = append(q.queued, input)
	return nil
}

type fakeVerifier struct {
	fail bool
}

func (v *fakeVerifier) Verify(_ context.Context, subject identity.Subject) (identity.Result, error) {
	if v.fail {
		return identity.Result{}, errors.New("provider unavailable")
	}
	return identity.Result{Verified: true, VerificationID: "stub-" + subject.Email[:1]}, nil
}
