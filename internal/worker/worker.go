package worker

import (
	"context"

	"github.com/vibe-gaming/registration/internal/service"
)

type Workers struct {
	EmailSender EmailSender
}

type Deps struct {
	Services *service.Services
}

type EmailSender interface {
	SendUserVerificationEmail(ctx context.Context, email, name, link string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender: newEmailSender(deps.Services.Emails),
	}
}
