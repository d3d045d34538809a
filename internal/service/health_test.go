package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthService_Check(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	report := newHealthService([]HealthCheck{{Name: "mysql", Ping: ok}}).Check(context.Background())
	assert.True(t, report.Healthy)
	assert.Equal(t, map[string]string{"mysql": "ok"}, report.Checks)

	report = newHealthService([]HealthCheck{{Name: "mysql", Ping: ok}, {Name: "redis", Ping: down}}).Check(context.Background())
	assert.False(t, report.Healthy)
	assert.Equal(t, "connection refused", report.Checks["redis"])
}

func TestCountryService_GetAll(t *testing.T) {
	codes := newCountryService().GetAll(context.Background())
	assert.Len(t, codes, 20)
	assert.Equal(t, "+1", codes[0].Code)
}
