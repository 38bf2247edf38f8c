package arena

import (
	"strings"
	"testing"
)

func TestMetricsSnapshot(t *testing.T) {
	a := New(1024)
	a.Allocate(100, 8)

	m := a.Metrics()
	if m.NumRegions != 1 {
		t.Errorf("NumRegions = %d, want 1", m.NumRegions)
	}
	if m.SizeInUse == 0 {
		t.Error("SizeInUse should be non-zero after an allocation")
	}
	if m.Capacity != 1024 {
		t.Errorf("Capacity = %d, want 1024", m.Capacity)
	}
	if m.Utilization <= 0 || m.Utilization > 1 {
		t.Errorf("Utilization = %f, want in (0, 1]", m.Utilization)
	}
}

func TestUtilizationZeroCapacity(t *testing.T) {
	a := New(1024)
	if a.Utilization() != 0 {
		t.Errorf("Utilization of a fresh arena = %f, want 0", a.Utilization())
	}
}

func TestDumpUsageMentionsEveryRegion(t *testing.T) {
	a := New(256)
	a.Allocate(64, 8)
	a.Allocate(5000, 8) // forces a second region
	out := a.DumpUsage()
	if strings.Count(out, "<region[") != 2 {
		t.Errorf("DumpUsage should mention both regions, got:\n%s", out)
	}
}
