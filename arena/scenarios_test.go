package arena_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/EnaAlogo/megumem/arena"
)

// TestScenarioArenaGrowth is spec §8 scenario 1: with
// min_region_capacity = 4096, allocate 3000 bytes then 2000 bytes;
// expect two regions, the first holding the 3000-byte block and the
// second the 2000-byte block.
func TestScenarioArenaGrowth(t *testing.T) {
	a := arena.New(4096)
	p1 := a.Allocate(3000, 8)
	p2 := a.Allocate(2000, 8)

	require.NotNil(t, p1)
	require.NotNil(t, p2)
	require.Equal(t, 2, a.NumRegions())
}

// TestScenarioTailShrinkRealloc is spec §8 scenario 2: allocate p of
// 1024 bytes, then Reallocate(p, 1024, 512, _). The returned pointer
// equals p and SizeInUse drops by 512.
func TestScenarioTailShrinkRealloc(t *testing.T) {
	a := arena.New(4096)
	p := a.Allocate(1024, 8)
	before := a.SizeInUse()

	np := a.Reallocate(p, 1024, 512, 8)

	require.Equal(t, p, np)
	require.Equal(t, before-512, a.SizeInUse())
}

// TestScenarioMidBlockDeallocLeak is spec §8 scenario 3: allocate a
// (100) then b (100); deallocating a leaves SizeInUse at 200 and one
// live allocation; deallocating b afterward drops liveCount to 0 and
// resets used to 0. Both blocks use 4-byte alignment so b starts right
// after a (100 is a multiple of 4) and no padding enters the count.
func TestScenarioMidBlockDeallocLeak(t *testing.T) {
	a := arena.New(4096)
	pa := a.Allocate(100, 4)
	pb := a.Allocate(100, 4)

	a.Deallocate(pa, 100, 4)
	require.Equal(t, 200, a.SizeInUse(), "mid-block dealloc should leak bytes until clear")

	a.Deallocate(pb, 100, 4)
	require.Equal(t, 0, a.SizeInUse(), "dropping the last live allocation resets used to 0")
}

// TestScenarioRoundTrip verifies spec §8's round-trip property: a
// value written at a pointer returned by Allocate reads back
// identically until the next Clear/Free/Deallocate of that range.
func TestScenarioRoundTrip(t *testing.T) {
	a := arena.New(4096)
	p := a.Allocate(8, 8)
	*(*int64)(p) = 123456789

	require.Equal(t, int64(123456789), *(*int64)(p))

	a.ClearArena()
	// After ClearArena the bytes are unspecified; NumRegions is
	// unchanged and the arena remains valid for new allocations.
	require.Equal(t, 1, a.NumRegions())
}

// TestScenarioReallocToZeroMatchesDeallocate verifies spec §8's
// Reallocate(p, n, 0, _) == none property and that it is
// indistinguishable from Deallocate(p, n, _) in its effect on usage.
func TestScenarioReallocToZeroMatchesDeallocate(t *testing.T) {
	a := arena.New(4096)
	p := a.Allocate(100, 8)

	np := a.Reallocate(p, 100, 0, 8)
	require.Nil(t, unsafe.Pointer(np))
	require.Equal(t, 0, a.SizeInUse())
}

// TestScenarioShrinkThenDeallocLeavesZeroLiveCount is the test spec §9
// explicitly asks for: an in-place shrink via Reallocate does not
// decrement the live count, so a subsequent Deallocate of the
// shrunken block must still be the one that drops it to zero.
func TestScenarioShrinkThenDeallocLeavesZeroLiveCount(t *testing.T) {
	a := arena.New(4096)
	p := a.Allocate(1024, 8)
	p = a.Reallocate(p, 1024, 512, 8)

	a.Deallocate(p, 512, 8)
	require.Equal(t, 0, a.SizeInUse())
	require.Contains(t, a.DumpUsage(), "live_allocs:0 ")
}

// TestScenarioReallocateUnknownPointerIsNoop is spec §7 UnknownPointer
// for realloc on a populated, otherwise-healthy arena: a pointer owned
// by no region must be a silent no-op — it must not be confused with a
// genuine host-allocator failure and must not panic ErrOutOfMemory.
func TestScenarioReallocateUnknownPointerIsNoop(t *testing.T) {
	a := arena.New(4096)
	a.Allocate(100, 8) // arena is non-empty and healthy

	var stray [16]byte
	require.NotPanics(t, func() {
		np := a.Reallocate(unsafe.Pointer(&stray[0]), 8, 16, 8)
		require.Nil(t, np)
	})
}
