package gc_test

import (
	"fmt"
	"unsafe"

	"github.com/EnaAlogo/megumem/gc"
)

// Example demonstrates pinning an object with MarkKeepAlive so it
// survives a collection regardless of reachability, then releasing
// the pin so a later collection sweeps it.
func Example() {
	c := gc.New()
	defer c.FreeAll()

	p := gc.NewObject(c, 42)
	c.MarkKeepAlive(unsafe.Pointer(p))

	c.Collect() // survives regardless of the stack scan's outcome: MarkKeepAlive overrides it
	fmt.Println(*p)

	c.UnmarkKeepAlive(unsafe.Pointer(p))
	c.Free(unsafe.Pointer(p))
	fmt.Println(c.DumpUsage())

	// Output:
	// 42
	// GC stats {
	// }
}

// ExampleNewArray demonstrates allocating a contiguous block of
// collector-owned elements.
func ExampleNewArray() {
	c := gc.New()
	defer c.FreeAll()

	arr := gc.NewArray[int32](c, 4)
	for i := range arr {
		arr[i] = int32(i * i)
	}
	fmt.Println(arr)

	// Output:
	// [0 1 4 9]
}
