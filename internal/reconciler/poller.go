package reconciler

import (
	"context"
	"time"

	"github.com/okian/courtside/pkg/logger"
)

// Poll interval bounds. Anything faster than MinInterval hammers the
// aggregator without the overlay getting visibly fresher.
const (
	MinInterval     = 250 * time.Millisecond
	DefaultInterval = time.Second
)

// Poller drives a reconciler off a source on a fixed interval. Ticks run
// sequentially on one goroutine, so polls never overlap.
type Poller struct {
	source     Source
	reconciler *Reconciler
	interval   time.Duration
	log        logger.Logger
}

// PollerOption configures the poller.
type PollerOption func(*Poller)

// WithInterval sets the poll interval, clamped to MinInterval.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) {
		if d <= 0 {
			return
		}
		if d < MinInterval {
			d = MinInterval
		}
		p.interval = d
	}
}

// WithPollerLogger sets a custom logger for the poller.
func WithPollerLogger(l logger.Logger) PollerOption {
	return func(p *Poller) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPoller creates a poller over the given source.
func NewPoller(source Source, opts ...PollerOption) *Poller {
	p := &Poller{
		source:     source,
		reconciler: New(),
		interval:   DefaultInterval,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.log == nil {
		p.log = logger.Get()
	}

	return p
}

// Interval reports the effective poll interval.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Tick performs one poll and returns the resulting frame. On failure the
// last good frame comes back with the error indicator raised.
func (p *Poller) Tick(ctx context.Context) Frame {
	payload, err := p.source.Fetch(ctx)
	if err != nil {
		p.log.Warn(ctx, "poll failed", logger.Error(err))
		return p.reconciler.Fail()
	}
	return p.reconciler.Apply(payload)
}

// Run polls until the context is canceled, handing each frame to emit. The
// first tick fires immediately.
func (p *Poller) Run(ctx context.Context, emit func(Frame)) {
	emit(p.Tick(ctx))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			emit(p.Tick(ctx))
		}
	}
}
