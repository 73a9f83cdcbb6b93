package healthcheck

import (
	"github.com/earthart/aether/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) error
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingSubgraph fails when the indexer can't answer a _meta query
	PingSubgraph(context ctx.Ctx) error
	// PingCache fails when the shared cache is configured but unreachable
	PingCache(context ctx.Ctx) error
}
