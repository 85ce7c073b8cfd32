package store

// idAllocator hands out listing identifiers. Identifiers start at 1 and
// strictly increase for the lifetime of the process; an id is never
// reissued, even after the listing it belonged to has been deleted.
// The allocator itself is not synchronized: the owning store calls
// next() while holding its own mutex, which serializes allocation with
// every other mutating operation.
type idAllocator struct {
	next uint64 // next id to hand out
}

// newIDAllocator returns an allocator whose first id is 1.
func newIDAllocator() *idAllocator {
	return &idAllocator{next: 1}
}

// take returns the next unused id and advances the counter. It is
// called exactly once per successful creation; failed validations must
// not consume an id.
func (a *idAllocator) take() uint64 {
	id := a.next
	a.next++
	return id
}
