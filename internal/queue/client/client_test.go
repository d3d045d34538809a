package client

import (
	"context"
	"testing"

	"github.com/vibe-gaming/registration/internal/queue/task"
	"github.com/vibe-gaming/registration/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueuer_NoClient(t *testing.T) {
	restore := SetClient(nil)
	defer restore()

	err := NewEnqueuer().EnqueueVerificationEmail(context.Background(), service.VerificationEmailInput{Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrNoClient)
}

func TestGetClient_PrefersContext(t *testing.T) {
	global := asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:0"})
	defer global.Close()
	scoped := asynq.NewClient(asynq.RedisClientOpt{Addr: "127.0.0.1:0"})
	defer scoped.Close()

	restore := SetClient(global)
	defer restore()

	assert.Same(t, global, GetClient(context.Background()))
	assert.Same(t, scoped, GetClient(WithClient(context.Background(), scoped)))
}

func TestEnqueuer_EnqueueVerificationEmail(t *testing.T) {
	mr := miniredis.RunT(t)

	c := asynq.NewClient(asynq.RedisClientOpt{Addr: mr.Addr()})
	defer c.Close()

	ctx := WithClient(context.Background(), c)
	err := NewEnqueuer().EnqueueVerificationEmail(ctx, service.VerificationEmailInput{
		Email: "alice@example.com",
		Name:  "Alice",
		Link:  "http://localhost:8000/verify-email?token=abc",
	})
	require.NoError(t, err)

	pending, err := mr.List("asynq:{" + task.SendEmailQueueName + "}:pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = uuid.Parse(pending[0])
	assert.NoError(t, err)
	assert.True(t, mr.Exists("asynq:{"+task.SendEmailQueueName+"}:t:"+pending[0]))
}
