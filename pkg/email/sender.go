package email

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
)

const VerificationTemplate = "verification.html"

//go:embed templates/*.html
var templates embed.FS

type SendEmailInput struct {
	To      string
	ToName  string
	Subject string
	Body    string
	// Text is an optional plain-text alternative of Body.
	Text string
}

type Sender interface {
	Send(input SendEmailInput) error
}

func (e *SendEmailInput) GenerateBodyFromHTML(templateFileName string, data interface{}) error {
	t, err := template.ParseFS(templates, "templates/"+templateFileName)
	if err != nil {
		return fmt.Errorf("parse file failed: %w", err)
	}

	buf := new(bytes.Buffer)
	if err = t.Execute(buf, data); err != nil {
		return fmt.Errorf("email data injection failed: %w", err)
	}

	e.Body = buf.String()

	return nil
}

func (e *SendEmailInput) Validate() error {
	if e.To == "" {
		return errors.New("empty to")
	}

	if e.Subject == "" || e.Body == "" {
		return errors.New("empty subject/body")
	}

	if !IsEmailValid(e.To) {
		return errors.New("invalid to email")
	}

	return nil
}
