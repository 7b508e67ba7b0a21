// Package clock abstracts time so schedulers and timers can be driven
// deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock provides an abstraction for time operations
type Clock interface {
	// Now returns the current time
	Now() time.Time
	// Since returns the duration since the given time
	Since(t time.Time) time.Duration
	// Until returns the duration until the given time
	Until(t time.Time) time.Duration
}

// Real uses the actual system time
type Real struct{}

// NewReal creates a new Real clock instance
func NewReal() *Real {
	return &Real{}
}

// Now returns the current system time
func (c *Real) Now() time.Time {
	return time.Now()
}

// Since returns the duration since the given time
func (c *Real) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Until returns the duration until the given time
func (c *Real) Until(t time.Time) time.Duration {
	return time.Until(t)
}

// Simulated allows time manipulation for testing
type Simulated struct {
	mu      sync.Mutex
	current time.Time
}

// NewSimulated creates a new Simulated clock starting at the given time
func NewSimulated(start time.Time) *Simulated {
	return &Simulated{current: start}
}

// Now returns the simulated current time
func (c *Simulated) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Since returns the duration since the given time
func (c *Simulated) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Until returns the duration until the given time
func (c *Simulated) Until(t time.Time) time.Duration {
	return t.Sub(c.Now())
}

// Advance moves the simulated time forward
func (c *Simulated) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}
