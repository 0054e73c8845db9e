package health

import (
	"context"
	"fmt"

	"gateguard/internal/platform/health"
)

type DefinitionCounter interface {
	Count(ctx context.Context) (int, error)
}

// RegistryChecker reports whether the definition store answers queries.
type RegistryChecker struct {
	counter DefinitionCounter
}

func NewRegistryChecker(counter DefinitionCounter) *RegistryChecker {
	return &RegistryChecker{counter: counter}
}

func (c *RegistryChecker) Name() string {
	return "schema_registry"
}

func (c *RegistryChecker) ComponentType() string {
	return "component"
}

// Check reports degraded when the registry is reachable but empty, since
// every validation request would then fail with not found.
func (c *RegistryChecker) Check(ctx context.Context) health.CheckResult {
	select {
	case <-ctx.Done():
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "schema registry check cancelled",
		}
	default:
	}

	count, err := c.counter.Count(ctx)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "schema registry unavailable",
			Error:   err.Error(),
		}
	}

	result := health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("%d schema definitions registered", count),
		Value:   count,
		Unit:    "definitions",
	}
	if count == 0 {
		result.Status = health.StatusDegraded
		result.Message = "no schema definitions registered"
	}
	return result
}
