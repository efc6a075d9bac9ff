// Package arena implements a growable bump allocator (memory arena) for Go.
//
// # Overview
//
// An Arena owns one contiguous block of slots for values of a single type
// and hands out consecutive ranges of it on demand. When a request does not
// fit, the arena acquires a block at least twice as large, moves every live
// slot across, destroys what is left behind and releases the old block.
// Individual ranges are never reclaimed: Deallocate only checks ownership.
// Memory comes back in bulk on growth, Reset or Release.
//
// # Basic Usage
//
//	a, err := arena.New[int](arena.WithCapacity(10))
//	if err != nil {
//		return err
//	}
//	defer a.Release() // Destroy live slots and release the block
//
//	s, err := a.Allocate(5) // Raw slots, zero valued
//	for i := range s {
//		a.Construct(&s[i], i)
//	}
//
// # Growth
//
// The new capacity is max(capacity*2, used+n). Slots keep their offsets, so
// a range obtained before a growth is found again with Resolve:
//
//	old, _ := a.Allocate(5)
//	next, _ := a.Allocate(6) // grows from 10 to 20
//	old, _ = a.Resolve(old)  // same offsets in the new block
//
// # Containers
//
// The Allocator interface is the capability set containers build on. It is
// satisfied by *Arena and by GoAllocator, which takes every range straight
// from the Go heap. Rebind derives an arena for a container's internal node
// type from an arena of its user-facing value type, seeded with the same
// capacity. See the vector and ordmap packages.
//
// # Element Lifecycle
//
// Unconstructed and moved-from slots hold the zero value. Types that own
// resources implement Destroyer; Destroy is called for every slot torn down,
// including zero-valued ones.
//
// # Block Sources
//
// Blocks come from a Source. HeapSource allocates on the Go heap and may cap
// the block size. MmapSource maps anonymous memory for pointer-free types.
//
// # Thread Safety
//
// Arena is not goroutine-safe. Each arena belongs to one owner.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Growths: %d\n", m.Growths)
package arena
