package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/vibe-gaming/registration/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RunStop(t *testing.T) {
	cfg := &config.Config{HttpServer: config.HttpServer{Port: "0", Timeout: time.Second, IdleTimeout: time.Second}}
	srv := NewServer(cfg, http.NotFoundHandler())

	assert.Equal(t, ":0", srv.httpServer.Addr)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.ReadHeaderTimeout)

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	// give ListenAndServe a moment to bind before shutting down
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, http.ErrServerClosed))
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
