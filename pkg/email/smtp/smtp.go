package smtp

import (
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/go-gomail/gomail"
	"github.com/vibe-gaming/registration/pkg/email"
)

type SMTPSender struct {
	from     string
	fromName string
	dialer   *gomail.Dialer
}

func NewSMTPSender(from, fromName, user, pass, host string, port int) (*SMTPSender, error) {
	if host == "" {
		return nil, errors.New("empty smtp host")
	}

	if port <= 0 {
		return nil, errors.New("invalid smtp port")
	}

	if !email.IsEmailValid(from) {
		return nil, errors.New("invalid from email")
	}

	dialer := gomail.NewDialer(host, port, user, pass)
	dialer.TLSConfig = &tls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
	}

	return &SMTPSender{from: from, fromName: fromName, dialer: dialer}, nil
}

func (s *SMTPSender) Send(input email.SendEmailInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	msg := s.newMessage(input)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}

	return nil
}

func (s *SMTPSender) newMessage(input email.SendEmailInput) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(s.from, s.fromName))
	msg.SetHeader("To", msg.FormatAddress(input.To, input.ToName))
	msg.SetHeader("Subject", input.Subject)
	if input.Text != "" {
		msg.SetBody("text/plain", input.Text)
		msg.AddAlternative("text/html", input.Body)
	} else {
		msg.SetBody("text/html", input.Body)
	}
	return msg
}
