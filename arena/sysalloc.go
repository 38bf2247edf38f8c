package arena

import "unsafe"

// defaultAlignment mirrors __STDCPP_DEFAULT_NEW_ALIGNMENT__ on common
// 64-bit targets: the alignment a general-purpose allocator guarantees
// without being asked for anything stricter.
const defaultAlignment = 2 * unsafe.Sizeof(uintptr(0))

// alignmentOrDefault widens a caller-requested alignment up to
// defaultAlignment, matching Region's invariant that base is aligned
// to max(default_new_alignment, alignment).
func alignmentOrDefault(alignment uintptr) uintptr {
	if alignment < defaultAlignment {
		return defaultAlignment
	}
	return alignment
}

// alignmentShift computes the pad, in bytes, needed to advance addr up
// to the next multiple of alignment. alignment must be a power of two;
// this is never checked (spec: InvalidAlignment is undefined behavior,
// caller's responsibility).
func alignmentShift(addr, alignment uintptr) uintptr {
	shift := (-addr) & (alignment - 1)
	if shift == alignment {
		shift = 0
	}
	return shift
}

// sysAllocAligned is the host "sized aligned allocate" primitive spec
// §6 asks for: it never panics outward, reporting failure via ok=false
// instead. raw is the actual backing buffer (kept reachable so the Go
// garbage collector doesn't reclaim it out from under base); base is
// the first address inside raw aligned to alignment.
//
// Go has no manual free to pair with this allocate: the matching
// "free" is simply dropping every reference to raw, which is what
// region.release does.
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
