package usecase

import (
	"context"
	"sync"

	"github.com/viney-shih/goroutines"

	"github.com/earthart/aether/base/ctx"
	"github.com/earthart/aether/base/explorer"
	"github.com/earthart/aether/base/goroutine"
	"github.com/earthart/aether/base/log"
	"github.com/earthart/aether/base/metrics"
	"github.com/earthart/aether/domain"
)

const resolveWorkers = 8

type feed struct {
	id        string
	repo      domain.CollectorRepo
	formatter *explorer.Formatter
	resolver  domain.NameResolver
	metrics   metrics.Service

	mu         sync.RWMutex
	status     domain.FeedStatus
	collectors []domain.CollectorRecord
	closed     bool
	cancel     context.CancelFunc
	done       chan struct{}
	settled    sync.Once
}

func (f *feed) Id() string {
	return f.id
}

// Load replaces the collector list with the indexer's current answer. Errors
// keep the previous list and mark the feed failed. Nothing is written once the
// feed is closed.
func (f *feed) Load(c ctx.Ctx) error {
	if !f.setStatus(domain.FeedStatusLoading) {
		return domain.ErrFeedClosed
	}

	timer := f.metrics.BumpTime("feed.load.time")
	records, err := f.repo.FindMinted(c)
	timer.End()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		c.WithField("feed", f.id).Info("feed closed before load settled")
		return domain.ErrFeedClosed
	}
	if err != nil {
		f.metrics.BumpSum("feed.load.err", 1)
		c.WithFields(log.Fields{
			"err":  err,
			"feed": f.id,
		}).Error("repo.FindMinted failed")
		f.status = domain.FeedStatusFailed
		return err
	}
	if records == nil {
		records = []domain.CollectorRecord{}
	}
	f.collectors = records
	f.status = domain.FeedStatusLoaded
	return nil
}

// Wait blocks until the initial load settles or c is done
func (f *feed) Wait(c ctx.Ctx) error {
	select {
	case <-f.done:
		return nil
	case <-c.Done():
		return c.Err()
	}
}

func (f *feed) Close() {
	f.mu.Lock()
	f.closed = true
	cancel := f.cancel
	f.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	f.settle()
}

func (f *feed) Status() domain.FeedStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

func (f *feed) Collectors() []domain.CollectorRecord {
	f.mu.RLock()
	defer f.mu.RUnlock()
	res := make([]domain.CollectorRecord, len(f.collectors))
	copy(res, f.collectors)
	return res
}

// Rows renders one row per collector, in collector order. c bounds the ens
// lookups of the minters.
func (f *feed) Rows(c ctx.Ctx) []domain.CollectorRow {
	collectors := f.Collectors()
	names := f.resolveNames(c, collectors)

	rows := make([]domain.CollectorRow, len(collectors))
	for i, r := range collectors {
		rows[i] = domain.CollectorRow{
			Key:     r.Id,
			TokenId: r.TokenId,
			Minter:  f.formatter.Address(string(r.To), names[r.To.ToLower()]),
			TxHash:  f.formatter.TxHash(r.Id),
		}
	}
	return rows
}

type resolved struct {
	address domain.Address
	name    string
}

// resolveNames looks up ens names of the distinct minters. Lookup failures
// fall back to the plain address. Lookups still running when c is done are
// abandoned and their minters shown as plain addresses.
func (f *feed) resolveNames(c ctx.Ctx, collectors []domain.CollectorRecord) map[domain.Address]string {
	names := map[domain.Address]string{}
	if f.resolver == nil || c.Err() != nil {
		return names
	}

	addresses := []domain.Address{}
	seen := map[domain.Address]bool{}
	for _, r := range collectors {
		addr := r.To.ToLower()
		if seen[addr] || !addr.IsValid() {
			continue
		}
		seen[addr] = true
		addresses = append(addresses, addr)
	}
	if len(addresses) == 0 {
		return names
	}

	resolvedCh := make(chan map[domain.Address]string, 1)
	goroutine.RecoverableGo(func() {
		resolvedCh <- f.resolveBatch(c, addresses)
	}, goroutine.WithLogger(c.Logger))

	select {
	case res := <-resolvedCh:
		return res
	case <-c.Done():
		f.metrics.BumpSum("feed.resolve.timeout", 1)
		c.WithFields(log.Fields{
			"err":       c.Err(),
			"addresses": len(addresses),
		}).Warn("ens lookups abandoned")
		return names
	}
}

func (f *feed) resolveBatch(c ctx.Ctx, addresses []domain.Address) map[domain.Address]string {
	names := map[domain.Address]string{}
	b := goroutines.NewBatch(resolveWorkers, goroutines.WithBatchSize(len(addresses)))
	defer b.Close()
	for i := 0; i < len(addresses); i++ {
		addr := addresses[i]
		b.Queue(func() (interface{}, error) {
			name, err := f.resolver.ReverseResolve(c, addr)
			if err != nil {
				return nil, err
			}
			return resolved{addr, name}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("resolver.ReverseResolve failed")
			continue
		}
		res := ret.Value().(resolved)
		if res.name != "" {
			names[res.address] = res.name
		}
	}
	return names
}

func (f *feed) setStatus(status domain.FeedStatus) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false
	}
	f.status = status
	return true
}

func (f *feed) settle() {
	f.settled.Do(func() {
		close(f.done)
	})
}
