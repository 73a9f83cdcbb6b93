// Package backoff sleeps with growing delays between attempts of startup dials.
package backoff

import (
	"context"
	"time"
)

// Backoff doubles its delay after every wait, capped by limit
type Backoff struct {
	next  time.Duration
	start time.Duration
	limit time.Duration
	count int
}

// NewExponential waits start, 2*start, 4*start... up to limit. limit <= 0 means no cap.
func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.next = b.capped(b.start)
}

// Next is the delay of the coming Wait
func (b *Backoff) Next() time.Duration {
	return b.next
}

// Count is the number of completed waits
func (b *Backoff) Count() int {
	return b.count
}

// Wait sleeps for Next or until ctx is done
func (b *Backoff) Wait(ctx context.Context) error {
	timer := time.NewTimer(b.next)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	b.count++
	b.next = b.capped(b.next * 2)
	return nil
}

func (b *Backoff) capped(d time.Duration) time.Duration {
	if b.limit > 0 && d > b.limit {
		return b.limit
	}
	return d
}
