package health

import (
	"context"

	"gateguard/internal/platform/database/postgres"
	"gateguard/internal/platform/health"
)

type Connector interface {
	Connection() *postgres.DB
}

type DatabaseChecker struct {
	db   Connector
	name string
}

func NewDatabaseChecker(db Connector, name string) *DatabaseChecker {
	return &DatabaseChecker{
		db:   db,
		name: name,
	}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) ComponentType() string {
	return "datastore"
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	db := c.db.Connection()
	if db == nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database connection is not initialized",
		}
	}

	if err := db.Ping(ctx); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database connection failed",
			Error:   err.Error(),
		}
	}

	stats := db.Stats()
	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: "database connection healthy",
		Value:   stats.OpenConnections,
		Unit:    "connections",
	}
}
