package service

import (
	"context"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck probes one backing dependency.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthReport struct {
	Healthy bool
	// Checks maps dependency name to "ok" or the probe error.
	Checks map[string]string
}

type healthService struct {
	checks []HealthCheck
}

func newHealthService(checks []HealthCheck) *healthService {
	return &healthService{
		checks: checks,
	}
}

func (s *healthService) Check(ctx context.Context) HealthReport {
	report := HealthReport{
		Healthy: true,
		Checks:  make(map[string]string, len(s.checks)),
	}

	for _, check := range s.checks {
		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := check.Ping(pingCtx)
		cancel()

		if err != nil {
			report.Healthy = false
			report.Checks[check.Name] = err.Error()
			continue
		}
		report.Checks[check.Name] = "ok"
	}

	return report
}
