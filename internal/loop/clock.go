// Package loop provides the fixed-timestep driver that turns wall-clock
// time into simulation ticks. Hosts either feed it elapsed time from their
// own frame loop (Advance) or let it own a ticker (Run).
package loop

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultMaxCatchUp bounds the ticks run for one Advance call. Backlog
// beyond it is dropped so a stalled host does not spiral.
const DefaultMaxCatchUp = 5

// ErrStop ends Run without reporting an error when returned from a step.
var ErrStop = errors.New("loop: stop")

// Clock accumulates elapsed time and releases it in fixed ticks.
// It is not safe for concurrent use.
type Clock struct {
	interval   time.Duration
	maxCatchUp int
	acc        time.Duration
	ticks      uint64
	dropped    uint64
	logger     *log.Logger
}

// Option configures a Clock.
type Option func(*Clock)

// WithMaxCatchUp sets how many ticks a single Advance may release.
func WithMaxCatchUp(n int) Option {
	return func(c *Clock) {
		if n > 0 {
			c.maxCatchUp = n
		}
	}
}

// WithLogger enables debug logging of dropped backlog and Run lifecycle.
func WithLogger(l *log.Logger) Option {
	return func(c *Clock) {
		c.logger = l
	}
}

// NewClock creates a clock ticking fps times per second. Non-positive
// rates fall back to 60.
func NewClock(fps int, opts ...Option) *Clock {
	if fps <= 0 {
		fps = 60
	}
	c := &Clock{
		interval:   time.Second / time.Duration(fps),
		maxCatchUp: DefaultMaxCatchUp,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interval returns the duration of one tick.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Advance adds elapsed wall time and returns how many ticks are due.
// Negative elapsed time is ignored.
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := int(c.acc / c.interval)
	if n > c.maxCatchUp {
		dropped := n - c.maxCatchUp
		c.dropped += uint64(dropped)
		if c.logger != nil {
			c.logger.Debug("dropping tick backlog", "ticks", dropped)
		}
		n = c.maxCatchUp
		c.acc = 0
	} else {
		c.acc -= time.Duration(n) * c.interval
	}
	c.ticks += uint64(n)
	return n
}

// Ticks returns the total ticks released so far.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Dropped returns the ticks discarded because of catch-up limits.
func (c *Clock) Dropped() uint64 {
	return c.dropped
}

// Reset clears the accumulator and counters.
func (c *Clock) Reset() {
	c.acc = 0
	c.ticks = 0
	c.dropped = 0
}

// Run drives step from a ticker until ctx is done or step returns an
// error. ErrStop ends the loop cleanly.
func (c *Clock) Run(ctx context.Context, step func() error) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	if c.logger != nil {
		c.logger.Debug("loop started", "interval", c.interval)
	}

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			if c.logger != nil {
				c.logger.Debug("loop stopped", "ticks", c.ticks)
			}
			return ctx.Err()
		case now := <-ticker.C:
			n := c.Advance(now.Sub(last))
			last = now
			for range n {
				if err := step(); err != nil {
					if errors.Is(err, ErrStop) {
						return nil
					}
					return err
				}
			}
		}
	}
}
