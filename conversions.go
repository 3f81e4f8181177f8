// Package cwire is the runtime half of a code-generation framework for
// moving data across a C ABI boundary. An owned value (managed by Go's
// normal lifetime rules) is converted to a flat C representation built from
// raw pointers, fixed-width scalars and nul-terminated strings, and back.
//
// Three cooperating operations exist per C representation:
//
//   - FromOwned builds the C representation from an owned value,
//   - ToOwned rebuilds an owned value by borrowing the C representation,
//   - Release frees whatever the C representation privately owns.
//
// The bodies of those methods are normally synthesized by cwiregen (see
// cmd/cwiregen) from an annotated struct declaration. This package provides
// the contracts, the pointer ownership-transfer utilities, and the container
// types the generated code calls into.
package cwire

import "errors"

var (
	// ErrNullPointer is returned where a non-nullable field held a null
	// pointer, or when a reclaim saw a pointer that is already null.
	ErrNullPointer = errors.New("unexpected null pointer")

	// ErrNulByte is returned by NewCString when the owned string contains
	// an embedded nul byte, which a nul-terminated representation cannot
	// express.
	ErrNulByte = errors.New("string contains a nul byte")

	// ErrInvalidUTF8 is returned by GoString when the C string is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("string is not valid UTF-8")
)

// ReprPtr constrains a pointer to a C representation E whose owned
// counterpart is T. Generated code satisfies it with pointer receivers, so
// the containers (and generic helpers like RoundTrip-style test utilities)
// can convert elements without knowing their concrete type.
//
// ToOwned must not mutate the receiver: calling it any number of times on
// an unreleased value yields equal results. Release must be called at most
// once per value; generated implementations nil their pointer fields after
// freeing them so that a second call degrades to ErrNullPointer instead of
// a double free.
type ReprPtr[E, T any] interface {
	*E
	FromOwned(T) error
	ToOwned() (T, error)
	Release() error
}

// CBool is the one-byte C representation of a bool.
type CBool uint8

// CBoolOf converts an owned bool to its one-byte representation.
func CBoolOf(b bool) CBool {
	if b {
		return 1
	}
	return 0
}

// Bool converts back to an owned bool. Any nonzero byte is true.
func (b CBool) Bool() bool { return b != 0 }
