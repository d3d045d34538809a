package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vibe-gaming/registration/internal/config"
	"github.com/vibe-gaming/registration/pkg/logger"
	"go.uber.org/zap"
)

const verifyPath = "/v2/verify"

// Client calls a remote identity-verification API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.IdentityConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) Verify(ctx context.Context, subject Subject) (Result, error) {
	payload, err := json.Marshal(subject)
	if err != nil {
		return Result{}, errors.Wrap(err, "marshal verify request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+verifyPath, bytes.NewReader(payload))
	if err != nil {
		return Result{}, errors.Wrap(err, "create request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	logger.Debug("verifying identity", zap.String("url", req.URL.String()), zap.String("email", subject.Email))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, errors.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, errors.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, errors.Wrap(err, "decode response")
	}

	return result, nil
}
