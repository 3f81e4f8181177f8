package cwire

import (
	"fmt"
	"unsafe"

	"go.uber.org/multierr"
)

// CStringArray is the string specialization of CArray: Size raw string
// pointers reached through Data. The null pointer is the canonical empty
// form, Data is null if and only if Size is zero.
type CStringArray struct {
	Data **CChar
	Size int32
}

// FromOwned converts each owned string into a transferred C string and
// leaks the block of pointers. First failure aborts; strings already
// transferred are not reclaimed.
func (a *CStringArray) FromOwned(owned []string) error {
	if len(owned) == 0 {
		a.Data, a.Size = nil, 0
		return nil
	}
	ptrs := make([]*CChar, len(owned))
	for i, s := range owned {
		p, err := NewCString(s)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		ptrs[i] = p
	}
	a.Data = transferSlice(ptrs)
	a.Size = int32(len(owned))
	return nil
}

// ToOwned rebuilds the owned string slice by borrowing every contained
// string. The array is not mutated; the empty array comes back as the nil
// slice.
func (a *CStringArray) ToOwned() ([]string, error) {
	if err := a.checkEmptyInvariant(); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		return nil, nil
	}
	out := make([]string, 0, a.Size)
	ptrs := unsafe.Slice(a.Data, a.Size)
	for i, p := range ptrs {
		s, err := GoString(p)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Borrowed returns the block of string pointers without affecting
// ownership, for in-place inspection. Nil for the empty array.
func (a *CStringArray) Borrowed() []*CChar {
	if a.Data == nil {
		return nil
	}
	return unsafe.Slice(a.Data, a.Size)
}

// Release frees every contained string pointer and then the outer block.
// Freeing the strings is best-effort: a bad element does not stop the
// remaining ones from being freed, and the failures are aggregated.
func (a *CStringArray) Release() error {
	if err := a.checkEmptyInvariant(); err != nil {
		return err
	}
	if a.Data == nil {
		return nil
	}
	ptrs, err := reclaimSlice(a.Data, int(a.Size))
	if err != nil {
		return err
	}
	var errs error
	for i, p := range ptrs {
		if err := FreeCString(p); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("element %d: %w", i, err))
		}
	}
	a.Data, a.Size = nil, 0
	return errs
}

func (a *CStringArray) checkEmptyInvariant() error {
	if (a.Data == nil) != (a.Size == 0) {
		return fmt.Errorf("string array violates the null-iff-empty invariant: data=%p size=%d", a.Data, a.Size)
	}
	return nil
}
