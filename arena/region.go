package arena

import "unsafe"

// region is a single contiguous aligned byte buffer serving bump
// allocations. It is the Go analogue of region_t in the original
// arena.hpp: a fixed-capacity block with a live allocation counter and
// a bump cursor (base+used).
type region struct {
	raw       []byte // backing storage; nil once released or invalid
	base      uintptr
	capacity  uintptr
	used      uintptr
	alignment uintptr
	liveCount int
	next      *region
}

// newRegion constructs a region of the given capacity, aligned to
// max(defaultAlignment, alignment). On allocation failure the
// returned region is invalid (valid() is false) — construction never
// panics.
func newRegion(capacity int, alignment uintptr) *region {
	align := alignmentOrDefault(alignment)
	raw, base, ok := sysAllocAligned(capacity, align)
	if !ok {
		return &region{}
	}
	return &region{raw: raw, base: base, capacity: uintptr(capacity), alignment: align}
}

func (r *region) valid() bool {
	return r.base != 0
}

// fits reports whether nbytes can be reserved from the region with
// the given alignment. Uses strict '<', not '<=', against base+capacity —
// preserved from the original source verbatim (see DESIGN.md Open
// Question notes): the last byte of slack per region is unusable.
func (r *region) fits(nbytes, alignment uintptr) bool {
	if !r.valid() {
		return false
	}
	cursor := r.base + r.used
	pad := alignmentShift(cursor, alignment)
	return cursor+pad+nbytes < r.base+r.capacity
}

// reserve bumps the cursor by pad+nbytes and returns a pointer aligned
// to alignment. Caller must have checked fits first.
func (r *region) reserve(nbytes, alignment uintptr) unsafe.Pointer {
	cursor := r.base + r.used
	pad := alignmentShift(cursor, alignment)
	ptr := cursor + pad
	r.used += pad + nbytes
	r.liveCount++
	return unsafe.Pointer(ptr)
}

// contains reports whether p lies in [base, base+used).
func (r *region) contains(p unsafe.Pointer) bool {
	if !r.valid() {
		return false
	}
	addr := uintptr(p)
	return addr >= r.base && addr < r.base+r.used
}

// backDeallocate decrements liveCount; if it drops to zero the region
// resets to empty, else if p was the most recent allocation (ignoring
// alignment padding) the cursor steps back by nbytes, else the bytes
// leak until the next clear.
func (r *region) backDeallocate(p unsafe.Pointer, nbytes uintptr) {
	r.liveCount--
	if r.liveCount <= 0 {
		r.liveCount = 0
		r.used = 0
		return
	}
	cursor := r.base + r.used
	if uintptr(p)+nbytes == cursor {
		r.used -= nbytes
	}
}

// clear resets used and liveCount to zero without invoking anything —
// raw bytes only, no destructors (there are none at this layer).
func (r *region) clear() {
	r.used = 0
	r.liveCount = 0
}

// release transfers ownership of the backing buffer out of the
// region, invalidating it (base/used/capacity reset to zero). The
// returned slice must be discarded by the recipient the same way this
// package would have: by dropping every reference to it.
func (r *region) release() []byte {
	raw := r.raw
	r.raw = nil
	r.base = 0
	r.used = 0
	r.capacity = 0
	return raw
}
