package diag

import (
	"sync"

	"go.uber.org/multierr"
)

// Collector keeps every diagnostic it receives.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of the collected diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Len returns the number of diagnostics collected.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// Count returns how many diagnostics of kind k were collected.
func (c *Collector) Count(k Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.diags {
		if d.Kind == k {
			n++
		}
	}
	return n
}

// Err combines all diagnostics into one error, or nil if there are none.
func (c *Collector) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	for _, d := range c.diags {
		err = multierr.Append(err, d)
	}
	return err
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.diags = nil
	c.mu.Unlock()
}
