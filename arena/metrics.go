package arena

import (
	"fmt"
	"strings"
)

// ArenaMetrics is a snapshot of arena statistics (spec §6: a
// human-readable diagnostic, not a stable wire format).
type ArenaMetrics struct {
	SizeInUse   int
	Capacity    int
	NumRegions  int
	Utilization float64
}

// SizeInUse returns the total number of bytes currently reserved
// across every region.
func (a *Arena) SizeInUse() int {
	sum := 0
	for r := a.regions.head; r != nil; r = r.next {
		sum += int(r.used)
	}
	return sum
}

// Capacity returns the total capacity of every region.
func (a *Arena) Capacity() int {
	sum := 0
	for r := a.regions.head; r != nil; r = r.next {
		sum += int(r.capacity)
	}
	return sum
}

// Utilization returns SizeInUse/Capacity, or 0 if Capacity is 0.
func (a *Arena) Utilization() float64 {
	cap := a.Capacity()
	if cap == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(cap)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumRegions:  a.NumRegions(),
		Utilization: a.Utilization(),
	}
}

// DumpUsage returns a multi-line, human-readable description of every
// region: address, live allocation count, bytes reserved, capacity,
// and base address. The format is not stable and must not be parsed
// (spec §6).
func (a *Arena) DumpUsage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "arena usage (%d regions) {\n", a.NumRegions())
	for r := a.regions.head; r != nil; r = r.next {
		fmt.Fprintf(&b, "  <region[%p] live_allocs:%d reserved:%d capacity:%d base:%#x>\n",
			r, r.liveCount, r.used, r.capacity, r.base)
	}
	b.WriteString("}\n")
	return b.String()
}
