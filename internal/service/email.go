package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vibe-gaming/registration/internal/config"
	emailProvider "github.com/vibe-gaming/registration/pkg/email"
	"github.com/vibe-gaming/registration/pkg/logger"

	"go.uber.org/zap"
)

type EmailService struct {
	sender   emailProvider.Sender
	queue    EmailQueue
	config   config.EmailConfig
	appName  string
	tokenTTL time.Duration
}

func newEmailsService(sender emailProvider.Sender, queue EmailQueue, cfg *config.Config) *EmailService {
	return &EmailService{
		sender:   sender,
		queue:    queue,
		config:   cfg.Email,
		appName:  cfg.AppName,
		tokenTTL: cfg.Registration.TokenTTL,
	}
}

type verificationEmailInput struct {
	AppName        string
	Name           string
	Link           string
	ExpiresInHours int
}

type VerificationEmailInput struct {
	Email string
	Name  string
	Link  string
}

// SendUserVerificationEmail enqueues the email when a queue is configured and
// delivers it inline otherwise. Failures are logged, never returned.
func (s *EmailService) SendUserVerificationEmail(ctx context.Context, input VerificationEmailInput) bool {
	if s.queue != nil {
		if err := s.queue.EnqueueVerificationEmail(ctx, input); err != nil {
			logger.Error("enqueue verification email failed", zap.String("email", input.Email), zap.Error(err))
			return false
		}
		return true
	}

	if err := s.DeliverUserVerificationEmail(ctx, input); err != nil {
		logger.Error("send verification email failed", zap.String("email", input.Email), zap.Error(err))
		return false
	}

	return true
}

func (s *EmailService) DeliverUserVerificationEmail(_ context.Context, input VerificationEmailInput) error {
	templateInput := verificationEmailInput{
		AppName:        s.appName,
		Name:           input.Name,
		Link:           input.Link,
		ExpiresInHours: int(s.tokenTTL.Hours()),
	}
	sendInput := emailProvider.SendEmailInput{
		Subject: s.config.Subject,
		To:      input.Email,
		ToName:  input.Name,
		Text: fmt.Sprintf(
			"Hi %s,\n\nPlease verify your email address by opening this link:\n%s\n\nThe link expires in %d hours.\n",
			input.Name, input.Link, templateInput.ExpiresInHours,
		),
	}

	if err := sendInput.GenerateBodyFromHTML(emailProvider.VerificationTemplate, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
