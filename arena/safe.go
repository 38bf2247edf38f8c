package arena

import (
	"sync"
	"unsafe"
)

// ThreadSafeArena has the identical public contract of Arena, with
// every operation serialized by one coarse mutex. Allocation throwing
// happens after the lock is released (spec §4.4).
type ThreadSafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewThreadSafe creates a thread-safe arena. If minRegionCapacity <= 0,
// DefaultMinRegionCapacity is used.
func NewThreadSafe(minRegionCapacity int) *ThreadSafeArena {
	return &ThreadSafeArena{a: New(minRegionCapacity)}
}

func (s *ThreadSafeArena) Allocate(nbytes int, alignment uintptr) unsafe.Pointer {
	s.mu.Lock()
	p := s.a.regions.tryAlloc(nbytes, alignment, s.a.minRegionCapacity)
	s.mu.Unlock()
	if p == nil {
		panic(ErrOutOfMemory)
	}
	return p
}

func (s *ThreadSafeArena) AllocateNoThrow(nbytes int, alignment uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.regions.tryAlloc(nbytes, alignment, s.a.minRegionCapacity)
}

// Reallocate is Arena.Reallocate under the arena's mutex: a p unknown
// to every region is a silent no-op (spec §7 UnknownPointer), not an
// error.
func (s *ThreadSafeArena) Reallocate(p unsafe.Pointer, oldSize, newSize int, alignment uintptr) unsafe.Pointer {
	s.mu.Lock()
	np, ok := s.a.regions.tryRealloc(p, oldSize, newSize, alignment, s.a.minRegionCapacity)
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if np == nil && newSize != 0 {
		panic(ErrOutOfMemory)
	}
	return np
}

func (s *ThreadSafeArena) ReallocateNoThrow(p unsafe.Pointer, oldSize, newSize int, alignment uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	np, _ := s.a.regions.tryRealloc(p, oldSize, newSize, alignment, s.a.minRegionCapacity)
	return np
}

func (s *ThreadSafeArena) Deallocate(p unsafe.Pointer, nbytes int, alignment uintptr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.regions.dealloc(p, nbytes, alignment)
}

func (s *ThreadSafeArena) NumRegions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.regions.length
}

func (s *ThreadSafeArena) FreeUnusedRegions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.regions.removeUnused()
}

func (s *ThreadSafeArena) FreeArena() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.regions.freeAll()
}

func (s *ThreadSafeArena) ClearArena() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.regions.clearAll()
}

func (s *ThreadSafeArena) ReleaseArena() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.regions.releaseAll()
}

func (s *ThreadSafeArena) ReleaseRegionContaining(p unsafe.Pointer) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.regions.releaseRegionContaining(p)
}

func (s *ThreadSafeArena) DumpUsage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.DumpUsage()
}

func (s *ThreadSafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

func (s *ThreadSafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

func (s *ThreadSafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

func (s *ThreadSafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}
