package gc

import "unsafe"

// defaultAlignment mirrors __STDCPP_DEFAULT_NEW_ALIGNMENT__, the
// alignment a general-purpose allocator guarantees without being
// asked for anything stricter.
const defaultAlignment = 2 * unsafe.Sizeof(uintptr(0))

// alignmentOrDefault widens a caller-requested alignment up to
// defaultAlignment, matching object's invariant that its storage is
// aligned to max(default_new_alignment, alignment).
func alignmentOrDefault(alignment uintptr) uintptr {
	if alignment < defaultAlignment {
		return defaultAlignment
	}
	return alignment
}

// alignmentShift computes the pad, in bytes, needed to advance addr up
// to the next multiple of alignment. alignment must be a power of two.
func alignmentShift(addr, alignment uintptr) uintptr {
	shift := (-addr) & (alignment - 1)
	if shift == alignment {
		shift = 0
	}
	return shift
}

// sysAllocAligned is the same host "sized aligned allocate" primitive
// arena.sysAllocAligned implements, duplicated rather than imported:
// the gc and arena packages are independently usable (spec §2), so gc
// does not depend on arena for twenty lines of pointer arithmetic.
func sysAllocAligned(nbytes int, alignment uintptr) (raw []byte, base uintptr, ok bool) {
	defer func() {
		if recover() != nil {
			raw, base, ok = nil, 0, false
		}
	}()
	if nbytes < 0 {
		return nil, 0, false
	}
	size := nbytes + int(alignment)
	buf := make([]byte, size)
	start := uintptr(unsafe.Pointer(&buf[0]))
	pad := alignmentShift(start, alignment)
	return buf, start + pad, true
}
