package cwire

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// CChar is the narrow character type of C string fields. A string field in
// a C representation is a *CChar pointing at the first byte of a
// nul-terminated buffer.
type CChar = byte

// NewCString converts an owned string into a transferred C string pointer.
// The returned pointer must eventually be handed to FreeCString exactly
// once. An embedded nul byte cannot be represented and yields ErrNulByte.
func NewCString(s string) (*CChar, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrNulByte
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return transferSlice(buf), nil
}

// GoString borrows the nul-terminated buffer behind p and returns an owned
// copy of its text. It does not affect ownership and may be called any
// number of times while p remains valid. A null pointer or invalid UTF-8
// content is a conversion failure.
//
// The scan trusts the C contract that a terminator exists; an
// unterminated buffer is undefined behavior, exactly as in C.
func GoString(p *CChar) (string, error) {
	if p == nil {
		return "", ErrNullPointer
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	b := unsafe.Slice(p, n)
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// FreeCString reclaims a C string pointer created by NewCString. Single-use:
// nil yields ErrNullPointer, an unknown or already-freed pointer panics.
func FreeCString(p *CChar) error {
	if p == nil {
		return ErrNullPointer
	}
	if !transferBack(unsafe.Pointer(p)) {
		panic("cwire: FreeCString on a pointer that was not transferred or was already freed")
	}
	return nil
}
