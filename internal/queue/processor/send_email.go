package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vibe-gaming/registration/internal/queue/task"
	"github.com/vibe-gaming/registration/internal/worker"

	"github.com/hibiken/asynq"
)

type sendEmailProcessor struct {
	workers *worker.Workers
}

func NewSendEmailProcessor(workers *worker.Workers) *sendEmailProcessor {
	return &sendEmailProcessor{
		workers: workers,
	}
}

// ProcessTask delivers one queued verification email. Payloads that can never
// succeed are not retried.
func (p *sendEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendEmail
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("decode verification email payload: %v: %w", err, asynq.SkipRetry)
	}
	if data.Email == "" || data.Link == "" {
		return fmt.Errorf("verification email payload lacks recipient or link: %w", asynq.SkipRetry)
	}

	if err := p.workers.EmailSender.SendUserVerificationEmail(ctx, data.Email, data.Name, data.Link); err != nil {
		return fmt.Errorf("deliver verification email: %w", err)
	}

	return nil
}
