package worker

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/registration/internal/service"
	"github.com/vibe-gaming/registration/pkg/logger"

	"go.uber.org/zap"
)

type emailSender struct {
	emails service.Emails
}

func newEmailSender(emails service.Emails) *emailSender {
	return &emailSender{
		emails: emails,
	}
}

func (s *emailSender) SendUserVerificationEmail(ctx context.Context, email, name, link string) error {
	err := s.emails.DeliverUserVerificationEmail(ctx, service.VerificationEmailInput{
		Email: email,
		Name:  name,
		Link:  link,
	})
	if err != nil {
		return fmt.Errorf("deliver verification email failed: %w", err)
	}

	logger.Debug("queued verification email delivered", zap.String("email", email))

	return nil
}
