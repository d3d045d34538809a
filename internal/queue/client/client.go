package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vibe-gaming/registration/internal/queue/task"
	"github.com/vibe-gaming/registration/internal/service"

	"github.com/hibiken/asynq"
)

type ctxKey int

const (
	_ ctxKey = iota
	asyncQCtxKey
)

var (
	globalClient *asynq.Client
	globalMu     sync.RWMutex

	ErrNoClient = errors.New("asynq client is not configured")
)

// GetClient returns the Client stored in ctx, falling back to the global
// one, which can be reconfigured with SetClient. It's safe for concurrent use.
func GetClient(ctx context.Context) *asynq.Client {
	c := ctx.Value(asyncQCtxKey)
	if c != nil {
		client, ok := c.(*asynq.Client)
		if !ok {
			return nil
		}

		return client
	}

	globalMu.RLock()
	client := globalClient
	globalMu.RUnlock()

	return client
}

// SetClient replaces the global Client, and returns a
// function to restore the original value. It's safe for concurrent use.
func SetClient(client *asynq.Client) func() {
	globalMu.Lock()
	prev := globalClient
	globalClient = client
	globalMu.Unlock()
	return func() { SetClient(prev) }
}

// WithClient returns a copy of ctx carrying client.
func WithClient(ctx context.Context, client *asynq.Client) context.Context {
	return context.WithValue(ctx, asyncQCtxKey, client)
}

// Enqueuer puts verification emails on the send-email queue.
type Enqueuer struct{}

func NewEnqueuer() *Enqueuer {
	return &Enqueuer{}
}

func (e *Enqueuer) EnqueueVerificationEmail(ctx context.Context, input service.VerificationEmailInput) error {
	client := GetClient(ctx)
	if client == nil {
		return ErrNoClient
	}

	t, err := task.NewSendEmailTask(input.Email, input.Name, input.Link)
	if err != nil {
		return fmt.Errorf("create send email task failed: %w", err)
	}

	if _, err := client.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue send email task failed: %w", err)
	}

	return nil
}
