package gc

import "unsafe"

// NewObject allocates a T inside c, zero-valued then copied from the
// in-place construction template's closest Go equivalent: a value
// passed by the caller. A finalizer that runs v's destructor-shaped
// cleanup can be supplied via NewObjectWithFinalizer; NewObject itself
// assumes T needs no teardown beyond becoming unreachable, matching
// the original's is_trivially_destructible_v branch.
func NewObject[T any](c *Collector, v T) *T {
	size := int(unsafe.Sizeof(v))
	align := unsafe.Alignof(v)
	p := c.Allocate(size, align, nil)
	obj := (*T)(p)
	*obj = v
	return obj
}

// NewObjectWithFinalizer is NewObject's counterpart for types that
// need cleanup before their storage is swept — the Go analogue of the
// original's non-trivial-destructor branch, which ran T's destructor
// through a captured function pointer. finalize receives the stored
// value by pointer immediately before the object's table entry is
// dropped.
func NewObjectWithFinalizer[T any](c *Collector, v T, finalize func(*T)) *T {
	size := int(unsafe.Sizeof(v))
	align := unsafe.Alignof(v)
	p := c.Allocate(size, align, func(data unsafe.Pointer, _ uintptr) {
		finalize((*T)(data))
	})
	obj := (*T)(p)
	*obj = v
	return obj
}

// NewArray allocates num contiguous, zero-valued Ts inside c and
// returns them as a slice backed by collector-owned storage.
func NewArray[T any](c *Collector, num int) []T {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)
	p := c.Allocate(elemSize*num, align, nil)
	return unsafe.Slice((*T)(p), num)
}

// NewArrayWithFinalizer is NewArray's counterpart for element types
// that need per-element cleanup before the backing storage is swept —
// the Go analogue of the original NewArray<T>'s non-trivial-destructor
// branch, which ran every element's destructor in a loop.
func NewArrayWithFinalizer[T any](c *Collector, num int, finalize func([]T)) []T {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)
	p := c.Allocate(elemSize*num, align, func(data unsafe.Pointer, size uintptr) {
		finalize(unsafe.Slice((*T)(data), size/uintptr(elemSize)))
	})
	return unsafe.Slice((*T)(p), num)
}
