package asynqserver

import (
	"testing"

	"github.com/vibe-gaming/registration/internal/cache"
	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/internal/queue/task"
	"github.com/vibe-gaming/registration/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
)

func TestRedisOptions(t *testing.T) {
	var cfg config.Cache
	cfg.Redis.Address = "localhost:6379"
	cfg.Redis.Password = "pw"

	single, ok := RedisOptions(cfg).(asynq.RedisClientOpt)
	assert.True(t, ok)
	assert.Equal(t, "localhost:6379", single.Addr)
	assert.Equal(t, "pw", single.Password)

	cfg.Type = cache.RedisTypeCluster
	cfg.RedisCluster.Addresses = []string{"10.0.0.1:7000", "10.0.0.2:7001"}
	cluster, ok := RedisOptions(cfg).(asynq.RedisClusterClientOpt)
	assert.True(t, ok)
	assert.Equal(t, cfg.RedisCluster.Addresses, cluster.Addrs)
}

func TestGetQueues(t *testing.T) {
	mux, queues := getQueues(&worker.Workers{})

	assert.Equal(t, map[string]int{task.SendEmailQueueName: 1}, queues)

	tsk := asynq.NewTask(task.SendEmailTaskName, nil)
	_, pattern := mux.Handler(tsk)
	assert.Equal(t, task.SendEmailTaskName, pattern)
}
