package planservice

import (
	"os"
	"time"

	"treatment_planner/internal/usecase/interfaces"
)

// NewFromEnv returns the in-memory service when PLAN_SERVICE_MOCK is set and the
// HTTP gateway otherwise.
//
// Supported env vars:
//   - PLAN_SERVICE_URL (required unless mocked)
//   - PLAN_SERVICE_TIMEOUT (Go duration, default 15s)
//   - PLAN_SERVICE_MOCK (1/true/yes/on/mock)
func NewFromEnv() (interfaces.IPlanService, error) {
	if isPlanServiceMockEnabled(os.Getenv) {
		return NewMockService(), nil
	}
	return NewHTTPGateway(os.Getenv("PLAN_SERVICE_URL"), parseDuration(os.Getenv("PLAN_SERVICE_TIMEOUT")))
}

func parseDuration(v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0
	}
	return d
}
