package gc

import (
	"fmt"
	"unsafe"
)

// Mark is the tri-state mark every tracked object carries, used to
// break reference cycles during a collection cycle. Grounded 1:1 on
// GCMark in original_source/garbage-collector/gc_impl.hpp.
type Mark int8

const (
	// MarkDefault is every object's mark at allocation and after a
	// cycle in which it was reached but not pinned: unreached since
	// the last sweep until proven otherwise.
	MarkDefault Mark = iota
	// MarkReferenced is set the first time a collection's scan
	// reaches an object; it survives the sweep and resets to
	// MarkDefault for the next cycle.
	MarkReferenced
	// MarkKeepAlive pins an object across every cycle regardless of
	// whether the scan reaches it, until explicitly unpinned.
	MarkKeepAlive
)

func (m Mark) String() string {
	switch m {
	case MarkKeepAlive:
		return "MarkKeepAlive"
	case MarkReferenced:
		return "MarkReferenced"
	case MarkDefault:
		return "MarkDefault"
	default:
		return "MarkUndefined"
	}
}

// dtor destroys the value stored at data without freeing the backing
// storage (Go has no placement-destroy primitive; this exists purely
// to let Allocate, NewObjectWithFinalizer and NewArrayWithFinalizer
// run a caller-supplied finalizer before the
// table entry is dropped and the payload becomes unreachable to the Go
// runtime's own collector).
type dtor func(data unsafe.Pointer, size uintptr)

// object is the Go analogue of Object in gc_impl.hpp: a tracked
// allocation plus its mark, size, alignment, and optional destructor.
type object struct {
	raw       []byte // keeps data reachable to Go's own GC
	data      unsafe.Pointer
	size      uintptr
	alignment uintptr
	destroyFn dtor
	status    Mark
}

// newObject allocates nbytes aligned to max(defaultAlignment,
// alignment) and returns an invalid object (valid() == false) if the
// host allocator cannot satisfy the request.
func newObject(nbytes int, alignment uintptr, destroyFn dtor) object {
	align := alignmentOrDefault(alignment)
	raw, base, ok := sysAllocAligned(nbytes, align)
	if !ok {
		return object{}
	}
	return object{
		raw:       raw,
		data:      unsafe.Pointer(base),
		size:      uintptr(nbytes),
		alignment: align,
		destroyFn: destroyFn,
		status:    MarkDefault,
	}
}

func (o *object) valid() bool {
	return o.data != nil
}

func (o *object) mark() Mark {
	return o.status
}

func (o *object) setMark(m Mark) {
	o.status = m
}

// destroy runs the destructor exactly once, then clears it so a
// double-destroy (e.g. Free followed by a table eviction) is a no-op.
func (o *object) destroy() {
	if o.valid() && o.destroyFn != nil {
		o.destroyFn(o.data, o.size)
		o.destroyFn = nil
	}
}

func (o object) String() string {
	if !o.valid() {
		return "<Object invalid>"
	}
	return fmt.Sprintf("<Object addr:%p size:%d dtor:%p mark:%s>", o.data, o.size, o.destroyFn, o.status)
}
