// internal/diag/collector.go
package diag

import (
	"fmt"
	"sync"
)

// Collector accumulates diagnostics across a whole build so that one pass
// over a project reports every problem instead of stopping at the first.
// It is safe for use from concurrently compiling files.
type Collector struct {
	mu       sync.Mutex
	errors   []*Diagnostic
	warnings []*Diagnostic
}

// NewCollector returns an empty Collector. One Collector lives for exactly
// one build invocation.
func NewCollector() *Collector {
	return &Collector{}
}

// AddError records a fatal diagnostic for one file. The build carries on
// with the remaining files.
func (c *Collector) AddError(d *Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, d)
}

// AddWarning records a non-fatal diagnostic.
func (c *Collector) AddWarning(d *Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, d)
}

// HasErrors reports whether any fatal diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errors) > 0
}

// Errors returns a copy of the recorded fatal diagnostics.
func (c *Collector) Errors() []*Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Diagnostic, len(c.errors))
	copy(out, c.errors)
	return out
}

// Warnings returns a copy of the recorded warnings.
func (c *Collector) Warnings() []*Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Diagnostic, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Summary renders a one-line count of errors and warnings.
func (c *Collector) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("%d error(s), %d warning(s)", len(c.errors), len(c.warnings))
}
