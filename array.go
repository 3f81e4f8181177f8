package cwire

import (
	"fmt"
	"unsafe"
)

// CArray is a dynamic array of C-representable elements: a contiguous block
// of Size elements reached through a raw pointer. The empty array is
// canonically represented by the null pointer: Data is null if and only if
// Size is zero.
//
// E is the element's C representation, T its owned counterpart, and P the
// pointer type tying the two together. A field declaration looks like
//
//	Toppings cwire.CArray[CTopping, Topping, *CTopping]
//
// A CArray may be shared read-only across goroutines; mutation (FromOwned,
// Release) must be serialized against any concurrent borrow by the owner.
type CArray[E, T any, P ReprPtr[E, T]] struct {
	Data *E
	Size int32
}

// FromOwned consumes an owned slice, converting each element in order. The
// first failing element aborts the conversion; elements already converted
// are not reclaimed.
func (a *CArray[E, T, P]) FromOwned(owned []T) error {
	if len(owned) == 0 {
		a.Data, a.Size = nil, 0
		return nil
	}
	elems := make([]E, len(owned))
	for i := range owned {
		if err := P(&elems[i]).FromOwned(owned[i]); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	a.Data = transferSlice(elems)
	a.Size = int32(len(owned))
	return nil
}

// ToOwned rebuilds an owned slice by borrowing each contained element. It
// does not mutate the array and yields equal results on repeated calls.
// The empty array comes back as the nil slice, so empty values round-trip
// exactly.
func (a *CArray[E, T, P]) ToOwned() ([]T, error) {
	if err := a.checkEmptyInvariant(); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		return nil, nil
	}
	out := make([]T, 0, a.Size)
	elems := unsafe.Slice(a.Data, a.Size)
	for i := range elems {
		v, err := P(&elems[i]).ToOwned()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Release reclaims the backing block, releasing every contained element
// first. Single-use on a non-empty array; releasing an empty array is a
// no-op.
func (a *CArray[E, T, P]) Release() error {
	if err := a.checkEmptyInvariant(); err != nil {
		return err
	}
	if a.Data == nil {
		return nil
	}
	elems, err := reclaimSlice(a.Data, int(a.Size))
	if err != nil {
		return err
	}
	for i := range elems {
		if err := P(&elems[i]).Release(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	a.Data, a.Size = nil, 0
	return nil
}

func (a *CArray[E, T, P]) checkEmptyInvariant() error {
	if (a.Data == nil) != (a.Size == 0) {
		return fmt.Errorf("array violates the null-iff-empty invariant: data=%p size=%d", a.Data, a.Size)
	}
	return nil
}
