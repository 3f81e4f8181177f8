package cwire

import (
	"sync"
	"unsafe"
)

// transfers records every allocation whose ownership has been moved out of
// Go's lifetime rules by IntoRaw or one of the container conversions. The
// entry keeps the backing allocation reachable and marks the pointer as
// outstanding: reclaiming a pointer with no entry is a double free in C
// terms, so it fails fast instead of corrupting memory.
var transfers = struct {
	mu sync.Mutex
	m  map[unsafe.Pointer]any
}{m: make(map[unsafe.Pointer]any)}

func transferOut(key unsafe.Pointer, backing any) {
	transfers.mu.Lock()
	transfers.m[key] = backing
	transfers.mu.Unlock()
}

func transferBack(key unsafe.Pointer) bool {
	transfers.mu.Lock()
	_, ok := transfers.m[key]
	delete(transfers.m, key)
	transfers.mu.Unlock()
	return ok
}

// IntoRaw moves v to the heap and leaks it into a raw pointer. The caller
// (typically the C side of the boundary) now owns the allocation and must
// hand the pointer back to FromRaw or DropRaw exactly once.
func IntoRaw[T any](v T) *T {
	p := new(T)
	*p = v
	transferOut(unsafe.Pointer(p), p)
	return p
}

// FromRaw takes back ownership of a pointer created by IntoRaw and returns
// the pointee. It must be called at most once per pointer: nil yields
// ErrNullPointer, and a pointer that was never transferred, or was already
// reclaimed, panics. The panic is the detectable stand-in for what would
// otherwise be a silent double free.
func FromRaw[T any](p *T) (T, error) {
	var zero T
	if p == nil {
		return zero, ErrNullPointer
	}
	if !transferBack(unsafe.Pointer(p)) {
		panic("cwire: FromRaw on a pointer that was not transferred or was already reclaimed")
	}
	return *p, nil
}

// DropRaw reclaims a pointer created by IntoRaw and discards the value.
// Same single-use contract as FromRaw.
func DropRaw[T any](p *T) error {
	_, err := FromRaw(p)
	return err
}

// Borrow returns a reference to the pointee without affecting ownership.
// It fails on a null pointer and is safe to call repeatedly as long as the
// pointee has not been released.
func Borrow[T any](p *T) (*T, error) {
	if p == nil {
		return nil, ErrNullPointer
	}
	return p, nil
}

// transferSlice leaks a non-empty block of elements, keyed by the address
// of its first element. Used by the container types for their backing
// storage; the null pointer is reserved for the empty case.
func transferSlice[E any](s []E) *E {
	p := &s[0]
	transferOut(unsafe.Pointer(p), s)
	return p
}

// reclaimSlice is the single-use reverse of transferSlice.
func reclaimSlice[E any](p *E, n int) ([]E, error) {
	if p == nil {
		return nil, ErrNullPointer
	}
	if !transferBack(unsafe.Pointer(p)) {
		panic("cwire: reclaiming a block that was not transferred or was already reclaimed")
	}
	return unsafe.Slice(p, n), nil
}
