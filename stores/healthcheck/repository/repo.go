package repository

import (
	"time"

	"github.com/earthart/aether/base/ctx"
	hcdomain "github.com/earthart/aether/domain/healthcheck"
	"github.com/earthart/aether/domain/keys"
	"github.com/earthart/aether/service/redis"
	"github.com/earthart/aether/service/subgraph"
)

const pingTimeout = 2 * time.Second

type impl struct {
	subgraph   subgraph.Client
	redisCache redis.Service
}

// New creates new HealthCheckRepo. redisCache may be nil when no shared cache is configured.
func New(
	subgraph subgraph.Client,
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		subgraph:   subgraph,
		redisCache: redisCache,
	}
}

func (im *impl) PingSubgraph(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	meta, err := im.subgraph.Meta(ctx)
	if err != nil {
		context.WithField("err", err).Error("ping subgraph error")
		return err
	}
	if meta.HasIndexingErrors {
		context.WithField("block", meta.Block.Number).Warn("subgraph has indexing errors")
	}
	return nil
}

func (im *impl) PingCache(context ctx.Ctx) error {
	if im.redisCache == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
