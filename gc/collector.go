package gc

import (
	"errors"
	"unsafe"
)

// ErrOutOfMemory is panicked by Allocate when the host allocator
// cannot satisfy a request.
var ErrOutOfMemory = errors.New("gc: out of memory")

// Collector is the public conservative-GC facade: a table of tracked
// objects plus the stack bound captured at construction time. Not safe
// for concurrent use without external synchronization — unlike
// arena.Arena, spec §5 does not ask for a thread-safe variant, since a
// conservative stack scan only makes sense for the single goroutine
// that owns the Collector.
type Collector struct {
	t        *table
	lastFree freeSite
}

// New creates a Collector, capturing the calling goroutine's current
// stack address as one bound of every future conservative scan. Call
// New on the same goroutine that will later call Collect.
func New() *Collector {
	return &Collector{t: newTable(currentStackAddr())}
}

// currentStackAddr returns the address of a stack-local variable in
// its caller's frame, the closest Go analogue of
// __builtin_frame_address(0)/_AddressOfReturnAddress used by the
// original's MEGU_GET_SP macro. go:noinline keeps the compiler from
// folding this away or inlining it into a frame whose address would
// then describe the wrong function's locals.
//
//go:noinline
func currentStackAddr() uintptr {
	var sentinel byte
	return uintptr(unsafe.Pointer(&sentinel))
}

// Allocate reserves nbytes aligned to alignment and tracks the result
// for future Collect cycles, with destroyFn (if non-nil) invoked
// exactly once when the object is freed or swept. Panics with
// ErrOutOfMemory if the host allocator cannot satisfy the request.
func (c *Collector) Allocate(nbytes int, alignment uintptr, destroyFn func(unsafe.Pointer, uintptr)) unsafe.Pointer {
	var df dtor
	if destroyFn != nil {
		df = func(data unsafe.Pointer, size uintptr) { destroyFn(data, size) }
	}
	o := newObject(nbytes, alignment, df)
	if !o.valid() {
		panic(ErrOutOfMemory)
	}
	return c.t.insert(o)
}

// Free destroys and evicts the object at data immediately, bypassing
// the next Collect cycle. A pointer unknown to the collector is a
// silent no-op.
func (c *Collector) Free(data unsafe.Pointer) {
	c.recordFreeSite()
	c.t.remove(uintptr(data))
}

// FreeAll destroys and evicts every tracked object.
func (c *Collector) FreeAll() {
	c.t.removeAll()
}

// MarkReachable marks data as reached by the current scan, so the next
// sweep spares it. Exposed for callers that maintain their own root
// set outside the conservative stack scan (e.g. global variables the
// scan cannot see). Collect does not scan the payload of an object
// that is already marked, so objects referenced only from data's
// payload are not kept alive by this call.
func (c *Collector) MarkReachable(data unsafe.Pointer) {
	c.t.markReachability(uintptr(data), MarkReferenced)
}

// MarkUnreachable resets data's mark to MarkDefault, as if the current
// cycle had never reached it.
func (c *Collector) MarkUnreachable(data unsafe.Pointer) {
	c.t.markReachability(uintptr(data), MarkDefault)
}

// MarkKeepAlive pins data so it survives every Collect cycle until
// UnmarkKeepAlive is called, regardless of whether the scan reaches
// it.
func (c *Collector) MarkKeepAlive(data unsafe.Pointer) {
	c.t.markReachability(uintptr(data), MarkKeepAlive)
}

// UnmarkKeepAlive releases a previous MarkKeepAlive pin, returning
// data's mark to MarkDefault; the next Collect cycle may sweep it.
func (c *Collector) UnmarkKeepAlive(data unsafe.Pointer) {
	c.t.markReachability(uintptr(data), MarkDefault)
}

// Collect runs one conservative mark-and-sweep cycle: every aligned
// word between the stack address captured at New and the stack
// address captured now is scanned as a potential pointer, recursively
// following any payload at least 8 bytes long that resolves to a
// tracked object (find_reachables in gc_impl.hpp). Objects reached
// this way, or pinned via MarkKeepAlive, survive; everything else is
// destroyed and evicted.
func (c *Collector) Collect() {
	now := currentStackAddr()
	if now < c.t.stackBase {
		c.scanRange(now, c.t.stackBase)
	} else {
		c.scanRange(c.t.stackBase, now)
	}
	c.t.sweep()
}

const wordSize = unsafe.Sizeof(uintptr(0))

// scanRange walks every aligned word in [begin, end], treating each
// as a candidate pointer into the object table.
func (c *Collector) scanRange(begin, end uintptr) {
	for addr := begin; addr <= end; addr += wordSize {
		c.scanWord(*(*uintptr)(unsafe.Pointer(addr)))
	}
}

// scanWord checks whether word is a tracked object's address; if so
// and the object hasn't already been reached this cycle, marks it
// referenced and, when its payload is large enough to itself hold
// pointer-shaped words, recurses into it (the conservative heap-graph
// walk, not just a stack walk).
func (c *Collector) scanWord(word uintptr) {
	o, ok := c.t.lookup(word)
	if !ok {
		return
	}
	if o.mark() != MarkDefault || !o.valid() {
		return
	}
	o.setMark(MarkReferenced)
	if o.size < 8 {
		return
	}
	base := uintptr(o.data)
	c.scanRange(base, base+o.size-wordSize)
}
