// Package arena implements a region-based bump allocator for Go.
//
// # Overview
//
// An Arena hands out memory from a linked list of fixed-capacity
// Regions. Allocations are O(1) amortized bump-pointer reservations;
// a Region is grown (a new one appended) only when none of the
// existing regions have room. Individual deallocation is supported on
// a best-effort basis: freeing the most recent allocation in a region
// shrinks its cursor back, freeing anything else just decrements the
// region's live count and leaks the bytes until the region is cleared
// or the whole arena is reset.
//
// # Basic usage
//
//	a := arena.New(0) // default minimum region capacity
//	defer a.FreeArena()
//
//	p := a.Allocate(1024, 8)
//	buf := unsafe.Slice((*byte)(p), 1024)
//
//	// typed helpers
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
//	a.ClearArena() // O(number of regions), keeps the regions for reuse
//
// # Thread safety
//
// Arena is not safe for concurrent use. ThreadSafeArena wraps it with
// a single coarse mutex:
//
//	sa := arena.NewThreadSafe(0)
//	defer sa.FreeArena()
//	p := sa.Allocate(1024, 8)
//
// # Error handling
//
// Allocate/Reallocate panic with ErrOutOfMemory when the host cannot
// satisfy a request (the sized-aligned allocator backing every
// Region's buffer returns failure). AllocateNoThrow/ReallocateNoThrow
// return a nil unsafe.Pointer instead. Deallocate, ReleaseRegionContaining,
// and the NoThrow allocation paths never panic: a pointer unknown to
// the arena is silently ignored, matching the "best-effort
// deallocation" contract callers rely on when mixing origins.
package arena
