package arena

import "unsafe"

// regionList is a singly-linked list of regions implementing the
// arena allocation policy: first-fit across the chain, append on
// miss, never reordered.
type regionList struct {
	head   *region
	length int
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// tryAlloc implements spec §4.2 try_alloc: construct-on-empty,
// first-fit scan, append-on-miss. Returns nil if growing the list
// fails.
func (l *regionList) tryAlloc(nbytes int, alignment uintptr, minCapacity int) unsafe.Pointer {
	nb := uintptr(nbytes)
	if l.head == nil {
		node := newRegion(maxInt(nbytes, minCapacity), alignment)
		if !node.valid() {
			return nil
		}
		l.head = node
		l.length = 1
		return node.reserve(nb, alignment)
	}
	for r := l.head; r != nil; r = r.next {
		if r.fits(nb, alignment) {
			return r.reserve(nb, alignment)
		}
		if r.next == nil {
			newNode := newRegion(maxInt(nbytes, minCapacity), alignment)
			if !newNode.valid() {
				return nil
			}
			r.next = newNode
			l.length++
			return newNode.reserve(nb, alignment)
		}
	}
	return nil // unreachable: the loop above always returns
}

// findOwner scans the chain in list order for the region containing p.
func (l *regionList) findOwner(p unsafe.Pointer) *region {
	for r := l.head; r != nil; r = r.next {
		if r.contains(p) {
			return r
		}
	}
	return nil
}

// tryRealloc implements spec §4.2 try_realloc. The second return value
// reports whether p was handled at all: it is false only when p is
// non-nil and owned by no region in the list (spec §7 UnknownPointer —
// a silent no-op, never an allocation failure). Callers must not treat
// a (nil, true) result — a genuine host-allocator failure, or a
// newSize==0 free — the same as a (nil, false) one.
func (l *regionList) tryRealloc(p unsafe.Pointer, oldSize, newSize int, alignment uintptr, minCapacity int) (unsafe.Pointer, bool) {
	if p == nil {
		return l.tryAlloc(newSize, alignment, minCapacity), true
	}
	if newSize == oldSize {
		return p, true
	}
	owner := l.findOwner(p)
	if owner == nil {
		return nil, false
	}
	if newSize == 0 {
		owner.backDeallocate(p, uintptr(oldSize))
		return nil, true
	}
	delta := newSize - oldSize
	cursor := owner.base + owner.used
	if uintptr(p)+uintptr(oldSize) == cursor && cursor+uintptr(delta) < owner.base+owner.capacity {
		owner.used = uintptr(int(owner.used) + delta)
		return p, true
	}
	if delta < 0 {
		return p, true // shrink, not the tail allocation: bytes leak in-region
	}
	newPtr := l.tryAlloc(newSize, alignment, minCapacity)
	if newPtr == nil {
		return nil, true
	}
	copy(unsafe.Slice((*byte)(newPtr), oldSize), unsafe.Slice((*byte)(p), oldSize))
	owner.backDeallocate(p, uintptr(oldSize))
	return newPtr, true
}

// dealloc routes a deallocation request to the owning region. A
// pointer unknown to any region is a silent no-op (spec §7
// UnknownPointer).
func (l *regionList) dealloc(p unsafe.Pointer, nbytes int, alignment uintptr) {
	r := l.findOwner(p)
	if r == nil {
		return
	}
	r.backDeallocate(p, uintptr(nbytes))
}

// releaseRegionContaining finds the region owning p, releases its
// buffer, unlinks and drops the node, and returns the released
// buffer. Returns nil if no region owns p.
func (l *regionList) releaseRegionContaining(p unsafe.Pointer) []byte {
	var prev *region
	for r := l.head; r != nil; r = r.next {
		if r.contains(p) {
			buf := r.release()
			if prev == nil {
				l.head = r.next
			} else {
				prev.next = r.next
			}
			l.length--
			return buf
		}
		prev = r
	}
	return nil
}

// releaseAll collects every region's released buffer, then drops all
// nodes. The caller now owns every returned buffer.
func (l *regionList) releaseAll() [][]byte {
	bufs := make([][]byte, 0, l.length)
	for r := l.head; r != nil; r = r.next {
		bufs = append(bufs, r.release())
	}
	l.head = nil
	l.length = 0
	return bufs
}

// clearAll clears every region in place; buffers remain owned by the
// list.
func (l *regionList) clearAll() {
	for r := l.head; r != nil; r = r.next {
		r.clear()
	}
}

// freeAll drops every node, emptying the list.
func (l *regionList) freeAll() {
	l.head = nil
	l.length = 0
}

// removeUnused drops every region with used==0 or liveCount==0.
//
// This preserves the original source's documented quirk verbatim: the
// forward pass removes l.next when it is unused but does not
// re-examine the node that takes its place, so two consecutive unused
// non-head nodes can survive a single call (spec §9 Open Question —
// "treat as observed behavior").
func (l *regionList) removeUnused() {
	for l.head != nil && (l.head.used == 0 || l.head.liveCount == 0) {
		l.head = l.head.next
		l.length--
	}
	if l.head == nil {
		return
	}
	for r := l.head; r != nil && r.next != nil; r = r.next {
		if r.next.used == 0 || r.next.liveCount == 0 {
			r.next = r.next.next
			l.length--
		}
	}
}
