package notice

import "sync"

// Sink receives notices in discovery order.
type Sink interface {
	// Add stores n and returns it. A zero notice is a programming error.
	Add(n Notice) Notice
}

// Collector is the append-only in-memory Sink used for a validation run.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(n Notice) Notice {
	if n.IsZero() {
		panic("notice: Add called with a zero notice")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, n)
	return n
}

// Notices returns a copy of every notice in the order it was added.
func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.notices)
}

// CountBySeverity tallies the collected notices per severity.
func (c *Collector) CountBySeverity() map[Severity]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := make(map[Severity]int, 2)
	for _, n := range c.notices {
		counts[n.Severity()]++
	}
	return counts
}

// HasErrors reports whether any error-severity notice was collected.
func (c *Collector) HasErrors() bool {
	return c.CountBySeverity()[SeverityError] > 0
}
