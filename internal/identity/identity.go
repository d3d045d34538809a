package identity

import (
	"context"

	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/pkg/logger"
)

type Subject struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Result struct {
	Verified       bool   `json:"verified"`
	VerificationID string `json:"verification_id"`
}

// Verifier checks a subject against an identity-verification provider.
type Verifier interface {
	Verify(ctx context.Context, subject Subject) (Result, error)
}

// New returns the HTTP provider when an API key is configured and the
// always-approve stub otherwise.
func New(cfg config.IdentityConfig) Verifier {
	if !cfg.Configured() {
		return NewStub(logger.Logger())
	}
	return NewClient(cfg)
}
