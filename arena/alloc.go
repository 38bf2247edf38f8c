package arena

import (
	"runtime"
	"unsafe"
)

// allocator is satisfied by both Arena and ThreadSafeArena, letting
// the generic helpers below work uniformly over either.
type allocator interface {
	Allocate(nbytes int, alignment uintptr) unsafe.Pointer
}

// Alloc returns a pointer to a T stored inside a, zeroed. The bytes are
// cleared explicitly, since bytes handed out again after ClearArena or
// Deallocate still hold their previous contents.
func Alloc[T any](a allocator) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)
	p := a.Allocate(size, align)
	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p)
}

// AllocSlice allocates a slice of n elements of type T inside a.
// Returns nil if n <= 0.
func AllocSlice[T any](a allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)
	p := a.Allocate(elemSize*n, align)
	return unsafe.Slice((*T)(p), n)
}

// PtrAndKeepAlive returns p and keeps a reachable until after the
// return value has been read. a itself owns no Go-tracked memory (its
// regions are backed by make([]byte, ...), which the Go GC already
// keeps alive for as long as any region is reachable), so this exists
// purely for call-site parity with code that must pin the arena
// explicitly against optimizations reordering its last use.
func PtrAndKeepAlive[T any](a allocator, p *T) *T {
	runtime.KeepAlive(a)
	return p
}
