package service

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/domain"
	"github.com/vibe-gaming/registration/internal/repository"
	"github.com/vibe-gaming/registration/pkg/hash"
	"github.com/vibe-gaming/registration/pkg/token"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	repo     *fakeUserRepo
	uploader *fakeUploader
	sender   *fakeSender
	verifier *fakeVerifier
	queue    *fakeQueue
	now      time.Time
	config   *config.Config
	services *Services
}

type envOption func(*testEnv)

func withQueue(q *fakeQueue) envOption {
	return func(e *testEnv) { e.queue = q }
}

func testConfig() *config.Config {
	return &config.Config{
		Env:     "test",
		AppName: "Test App",
		Registration: config.RegistrationConfig{
			BaseURL:          "http://localhost:8000",
			TokenTTL:         24 * time.Hour,
			MaxUploadBytes:   5 << 20,
			AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/gif"},
		},
		Email: config.EmailConfig{
			Subject: "Verify your email address",
		},
	}
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	env := &testEnv{
		repo:     newFakeUserRepo(),
		uploader: &fakeUploader{baseURL: "https://cdn.example.com"},
		sender:   &fakeSender{},
		verifier: &fakeVerifier{},
		now:      time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC),
		config:   testConfig(),
	}
	for _, opt := range opts {
		opt(env)
	}

	deps := Deps{
		Config:           env.config,
		Repos:            &repository.Repositories{Users: env.repo},
		Transactor:       fakeTransactor{},
		IdentityVerifier: env.verifier,
		Uploader:         env.uploader,
		EmailSender:      env.sender,
		TokenGenerator:   token.NewRandomGenerator(),
		TokenHasher:      hash.NewSHA256Hasher(""),
		Clock:            func() time.Time { return env.now },
	}
	if env.queue != nil {
		deps.EmailQueue = env.queue
	}

	env.services = NewServices(deps)
	return env
}

func aliceForm() domain.RegistrationForm {
	return domain.RegistrationForm{
		Name:        "Alice",
		Email:       "alice@example.com",
		DateOfBirth: "1990-05-01",
		CountryCode: "+1",
		PhoneNumber: "5551234567",
	}
}

func pngUpload(size int) *domain.Upload {
	return &domain.Upload{
		Filename:    "avatar.png",
		ContentType: "image/png",
		Data:        bytes.Repeat([]byte{0x89}, size),
	}
}

// tokenFromLink extracts the token query parameter of a verification link.
func tokenFromLink(t *testing.T, link string) string {
	t.Helper()

	u, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "/verify-email", u.Path)

	tok := u.Query().Get("token")
	require.NotEmpty(t, tok)
	return tok
}

// lastToken returns the token carried by the most recent verification email.
func (e *testEnv) lastToken(t *testing.T) string {
	t.Helper()

	msgs := e.sender.messages()
	require.NotEmpty(t, msgs)

	text := msgs[len(msgs)-1].Text
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "http") {
			return tokenFromLink(t, line)
		}
	}
	t.Fatal("no link in verification email")
	return ""
}

func (e *testEnv) register(t *testing.T, form domain.RegistrationForm, upload *domain.Upload) *domain.RegistrationResult {
	t.Helper()

	res, err := e.services.Users.Register(context.Background(), form, upload)
	require.NoError(t, err)
	return res
}
