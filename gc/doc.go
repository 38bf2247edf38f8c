// Package gc implements a conservative, non-moving mark-and-sweep
// garbage collector for Go.
//
// # Overview
//
// A Collector owns a table of heap objects keyed by address. Each
// object carries a tri-state mark (default, referenced, keep-alive)
// used to break reference cycles during a collection cycle. Collect
// performs a conservative scan: every aligned word in the observed
// range of the active goroutine's stack, plus every aligned word
// inside the payload of each object the scan itself reaches, is
// treated as a potential pointer and checked against the object
// table. Objects already marked before the scan (via MarkReachable or
// MarkKeepAlive) are not descended into. Objects
// that are neither reached during the scan nor held with
// MarkKeepAlive are swept (their destructor, if any, runs and their
// table entry is dropped).
//
// # Basic usage
//
//	c := gc.New()
//	p := c.Allocate(64, 8, nil)
//	c.Collect() // p is unreached and swept
//
//	obj := gc.NewObject[MyStruct](c, MyStruct{...})
//	c.MarkKeepAlive(unsafe.Pointer(obj))
//	c.Collect() // obj survives: it is pinned
//
// # Conservative scanning and Go's runtime
//
// Unlike the native-stack original this package is ported from, a Go
// goroutine's stack is managed by the runtime: it grows by copying to
// a larger backing array, and the copy rewrites every pointer-shaped
// word the runtime's own precise scanner recognizes. The address this
// package captures at Collector construction time (via
// currentStackAddr, the Go analogue of __builtin_frame_address) is a
// plain uintptr the runtime does NOT rewrite on a stack copy — if a
// goroutine's stack grows between New and a later Collect call, that
// captured bound may now describe memory that has already been
// reused, and conservative scanning beyond that boundary is undefined.
// This is a Go-native addition to the correctness envelope documented
// for the original implementation (see DESIGN.md); avoiding deep
// recursion or large stack frames between New and Collect on the same
// goroutine keeps the window this matters in small. Fixing it outright
// would require cooperating with the runtime's own stack management,
// which is explicitly out of scope (Non-goals).
//
// # Error handling
//
// Allocate panics with ErrOutOfMemory when the host allocator cannot
// satisfy a request, matching arena.Arena's convention. There is no
// NoThrow counterpart for gc.Collector: unlike Arena's bump allocator,
// every gc allocation is expected to succeed under normal operation,
// and the spec does not ask for one.
package gc
