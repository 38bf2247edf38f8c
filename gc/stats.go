package gc

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fjl/memsize"
	"github.com/go-stack/stack"
)

// DumpUsage returns a multi-line, human-readable description of every
// tracked object: address, size, destructor address (0x0 when there is
// none), and mark. Mirrors
// GarbageCollectorImpl::dump_usage in gc_impl.hpp. The format is not
// stable and must not be parsed.
func (c *Collector) DumpUsage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "GC stats {")
	for _, o := range c.t.objects {
		fmt.Fprintf(&b, "\n  %s", o)
	}
	b.WriteString("\n}\n")
	return b.String()
}

// MemSizeReport walks root (which must be a non-nil pointer, per
// memsize.Scan's own contract) and returns a human-readable report of
// the reachable object graph's total size. This is a diagnostics
// supplement beyond the ported original: SPEC_FULL.md wires
// github.com/fjl/memsize the same way go-ethereum's internal/debug
// handler does, for the "how big did my heap-graph actually get"
// question DumpUsage's per-object list doesn't answer well at scale.
func MemSizeReport(root interface{}) string {
	sizes := memsize.Scan(root)
	return sizes.Report()
}

// freeSite is the captured call-site of the most recent Free call,
// recorded for diagnostics (e.g. "who freed this and when did a
// use-after-free double-free happen").
type freeSite struct {
	mu   sync.Mutex
	call stack.Call
	set  bool
}

// LastFreeSite returns a "path/file.go:line" description of the most
// recent call to Free on c, or "" if Free has never been called.
// Wires github.com/go-stack/stack the way go-ethereum's log package
// captures caller information for structured log records.
func (c *Collector) LastFreeSite() string {
	c.lastFree.mu.Lock()
	defer c.lastFree.mu.Unlock()
	if !c.lastFree.set {
		return ""
	}
	return fmt.Sprintf("%+v", c.lastFree.call)
}

// recordFreeSite captures the call site one frame above its caller;
// called from Free so the recorded site is Free's caller, not Free
// itself.
func (c *Collector) recordFreeSite() {
	c.lastFree.mu.Lock()
	defer c.lastFree.mu.Unlock()
	c.lastFree.call = stack.Caller(2)
	c.lastFree.set = true
}
