package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibe-gaming/registration/internal/config"
	"go.uber.org/zap"
)

func TestNew_SelectsImplementation(t *testing.T) {
	_, isStub := New(config.IdentityConfig{}).(*Stub)
	assert.True(t, isStub)

	_, isClient := New(config.IdentityConfig{APIKey: "k", BaseURL: "http://x", Timeout: time.Second}).(*Client)
	assert.True(t, isClient)
}

func TestStub_AlwaysApproves(t *testing.T) {
	s := NewStub(zap.NewNop())

	first, err := s.Verify(context.Background(), Subject{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	second, err := s.Verify(context.Background(), Subject{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)

	assert.True(t, first.Verified)
	assert.True(t, strings.HasPrefix(first.VerificationID, "stub-"))
	assert.Len(t, first.VerificationID, len("stub-")+12)
	assert.NotEqual(t, first.VerificationID, second.VerificationID)
}

func TestClient_Verify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/verify", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))

		var subject Subject
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&subject))
		assert.Equal(t, "alice@example.com", subject.Email)

		_ = json.NewEncoder(w).Encode(Result{Verified: true, VerificationID: "ver-1"})
	}))
	defer srv.Close()

	c := NewClient(config.IdentityConfig{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: time.Second})

	res, err := c.Verify(context.Background(), Subject{Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, Result{Verified: true, VerificationID: "ver-1"}, res)
}

func TestClient_VerifyUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := NewClient(config.IdentityConfig{BaseURL: srv.URL, APIKey: "secret", Timeout: time.Second})

	_, err := c.Verify(context.Background(), Subject{Email: "alice@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
