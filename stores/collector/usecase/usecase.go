package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/explorer"
	"github.com/earthart/aether/base/goroutine"
	"github.com/earthart/aether/base/log"
	"github.com/earthart/aether/base/metrics"
	"github.com/earthart/aether/domain"
)

type impl struct {
	repo      domain.CollectorRepo
	formatter *explorer.Formatter
	resolver  domain.NameResolver
	metrics   metrics.Service
}

type CollectorUseCaseCfg struct {
	Repo      domain.CollectorRepo
	Formatter *explorer.Formatter
	// Resolver is optional, minters are shown as short addresses without it
	Resolver domain.NameResolver
	Metrics  metrics.Service
}

func New(cfg *CollectorUseCaseCfg) domain.CollectorUseCase {
	met := cfg.Metrics
	if met == nil {
		met = metrics.New("collector")
	}
	formatter := cfg.Formatter
	if formatter == nil {
		formatter = explorer.New("", "")
	}
	return &impl{
		repo:      cfg.Repo,
		formatter: formatter,
		resolver:  cfg.Resolver,
		metrics:   met,
	}
}

// Mount creates a feed and starts its initial load. The load runs detached
// from c so it lives as long as the feed, Close cancels it.
func (im *impl) Mount(c ctx.Ctx) domain.CollectorFeed {
	f := &feed{
		id:         uuid.NewString(),
		repo:       im.repo,
		formatter:  im.formatter,
		resolver:   im.resolver,
		metrics:    im.metrics,
		status:     domain.FeedStatusIdle,
		collectors: []domain.CollectorRecord{},
		done:       make(chan struct{}),
	}

	loadCtx, cancel := ctx.WithCancel(ctx.WithParent(c, context.Background()))
	loadCtx = ctx.WithValue(loadCtx, "feed", f.id)
	f.cancel = cancel

	im.metrics.BumpSum("feed.mount", 1)
	goroutine.RecoverableGo(func() {
		if err := f.Load(loadCtx); err != nil {
			loadCtx.WithField("err", err).Warn("initial load failed")
		}
		f.settle()
	}, goroutine.WithLogger(loadCtx.Logger), goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
		loadCtx.WithFields(log.Fields{"panic": p}).Error("initial load panicked")
		f.setStatus(domain.FeedStatusFailed)
		f.settle()
	}))
	return f
}
