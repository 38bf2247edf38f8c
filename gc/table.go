package gc

import "unsafe"

// table is the Go analogue of ObjectToChunkMap plus
// GarbageCollectorImpl's rsp_ field: every tracked object keyed by its
// data address, and the stack bound captured when the owning Collector
// was constructed.
type table struct {
	objects   map[uintptr]*object
	stackBase uintptr
}

func newTable(stackBase uintptr) *table {
	return &table{objects: make(map[uintptr]*object), stackBase: stackBase}
}

func (t *table) insert(o object) unsafe.Pointer {
	addr := uintptr(o.data)
	t.objects[addr] = &o
	return o.data
}

func (t *table) lookup(addr uintptr) (*object, bool) {
	o, ok := t.objects[addr]
	return o, ok
}

// remove destroys and evicts the object at addr, if tracked. Reports
// whether anything was removed.
func (t *table) remove(addr uintptr) bool {
	o, ok := t.objects[addr]
	if !ok {
		return false
	}
	o.destroy()
	delete(t.objects, addr)
	return true
}

// removeAll destroys and evicts every tracked object.
func (t *table) removeAll() {
	for addr, o := range t.objects {
		o.destroy()
		delete(t.objects, addr)
	}
}

func (t *table) markReachability(addr uintptr, m Mark) {
	if o, ok := t.objects[addr]; ok {
		o.setMark(m)
	}
}

// sweep drops every object that is neither MarkKeepAlive nor
// MarkReferenced; MarkReferenced objects survive and reset to
// MarkDefault for the next cycle. Grounded 1:1 on collect's
// std::erase_if predicate in gc_impl.hpp.
func (t *table) sweep() {
	for addr, o := range t.objects {
		switch o.mark() {
		case MarkKeepAlive:
			continue
		case MarkReferenced:
			o.setMark(MarkDefault)
			continue
		default:
			o.destroy()
			delete(t.objects, addr)
		}
	}
}

func (t *table) len() int {
	return len(t.objects)
}
