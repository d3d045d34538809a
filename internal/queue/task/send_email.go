package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	SendEmailTaskName  = "sendEmailTask"
	SendEmailQueueName = "sendEmailQueue"

	sendEmailMaxRetry = 5
	sendEmailTimeout  = 30 * time.Second
)

// SendEmail carries one verification email. The link already embeds the
// token, so the worker never touches the users table.
type SendEmail struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Link  string `json:"link"`
}

func NewSendEmailTask(email, name, link string) (*asynq.Task, error) {
	payload, err := json.Marshal(SendEmail{Email: email, Name: name, Link: link})
	if err != nil {
		return nil, fmt.Errorf("marshal verification email payload: %w", err)
	}

	return asynq.NewTask(
		SendEmailTaskName,
		payload,
		asynq.MaxRetry(sendEmailMaxRetry),
		asynq.Timeout(sendEmailTimeout),
		asynq.Queue(SendEmailQueueName),
	), nil
}
