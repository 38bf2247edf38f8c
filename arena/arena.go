package arena

import (
	"errors"
	"unsafe"
)

// DefaultMinRegionCapacity is used when New/NewThreadSafe are given a
// non-positive minimum region capacity.
const DefaultMinRegionCapacity = 1 << 12 // assume a 4KiB page

// ErrOutOfMemory is panicked by the throwing allocation/reallocation
// variants when the host allocator cannot satisfy a request. The
// NoThrow variants return a nil unsafe.Pointer instead and never
// panic.
var ErrOutOfMemory = errors.New("arena: out of memory")

// Arena is the public bump-allocator facade: a regionList plus a
// minimum-region-capacity policy. Not safe for concurrent use — see
// ThreadSafeArena.
type Arena struct {
	regions           regionList
	minRegionCapacity int
}

// New creates an Arena. If minRegionCapacity <= 0, DefaultMinRegionCapacity
// is used.
func New(minRegionCapacity int) *Arena {
	if minRegionCapacity <= 0 {
		minRegionCapacity = DefaultMinRegionCapacity
	}
	return &Arena{minRegionCapacity: minRegionCapacity}
}

// Allocate reserves nbytes aligned to alignment. Panics with
// ErrOutOfMemory if the host allocator cannot satisfy the request.
func (a *Arena) Allocate(nbytes int, alignment uintptr) unsafe.Pointer {
	p := a.regions.tryAlloc(nbytes, alignment, a.minRegionCapacity)
	if p == nil {
		panic(ErrOutOfMemory)
	}
	return p
}

// AllocateNoThrow is Allocate's non-throwing counterpart: returns nil
// instead of panicking.
func (a *Arena) AllocateNoThrow(nbytes int, alignment uintptr) unsafe.Pointer {
	return a.regions.tryAlloc(nbytes, alignment, a.minRegionCapacity)
}

// Reallocate grows, shrinks, or relocates an existing allocation; see
// spec §4.2 try_realloc for the full policy (in-place growth/shrink of
// the tail allocation, leaked shrink elsewhere, alloc-copy-free
// otherwise). Panics with ErrOutOfMemory if relocation is required and
// the host allocator cannot satisfy it; the original block is left
// untouched in that case. A p unknown to every region is a silent
// no-op (spec §7 UnknownPointer), not an error: it returns nil without
// panicking.
func (a *Arena) Reallocate(p unsafe.Pointer, oldSize, newSize int, alignment uintptr) unsafe.Pointer {
	np, ok := a.regions.tryRealloc(p, oldSize, newSize, alignment, a.minRegionCapacity)
	if !ok {
		return nil
	}
	if np == nil && newSize != 0 {
		panic(ErrOutOfMemory)
	}
	return np
}

// ReallocateNoThrow is Reallocate's non-throwing counterpart.
func (a *Arena) ReallocateNoThrow(p unsafe.Pointer, oldSize, newSize int, alignment uintptr) unsafe.Pointer {
	np, _ := a.regions.tryRealloc(p, oldSize, newSize, alignment, a.minRegionCapacity)
	return np
}

// Deallocate returns nbytes starting at p to the owning region. A
// pointer unknown to the arena is silently ignored.
func (a *Arena) Deallocate(p unsafe.Pointer, nbytes int, alignment uintptr) {
	a.regions.dealloc(p, nbytes, alignment)
}

// NumRegions returns the number of regions currently backing the
// arena.
func (a *Arena) NumRegions() int {
	return a.regions.length
}

// FreeUnusedRegions drops regions with no live allocations in a single
// forward pass. After a non-head region is dropped, the region that
// takes its place is not checked, so of two consecutive unused
// non-head regions the second survives the call.
func (a *Arena) FreeUnusedRegions() {
	a.regions.removeUnused()
}

// FreeArena drops every region, emptying the arena. After this call
// NumRegions() == 0.
func (a *Arena) FreeArena() {
	a.regions.freeAll()
}

// ClearArena resets every region's cursor to empty without dropping
// any of them; NumRegions() is unchanged.
func (a *Arena) ClearArena() {
	a.regions.clearAll()
}

// ReleaseArena releases every region's backing buffer to the caller
// and empties the arena. The caller now owns every returned buffer.
func (a *Arena) ReleaseArena() [][]byte {
	return a.regions.releaseAll()
}

// ReleaseRegionContaining releases the single region owning p,
// returning its backing buffer, or nil if no region owns p.
func (a *Arena) ReleaseRegionContaining(p unsafe.Pointer) []byte {
	return a.regions.releaseRegionContaining(p)
}
