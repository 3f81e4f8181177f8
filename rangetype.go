package cwire

// Scalar is the set of fixed-width numeric types a range can span.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range is the owned half-open interval [Start, End).
type Range[T Scalar] struct {
	Start T
	End   T
}

// CRange is the C representation of Range: two adjacent scalar fields.
// When the C side needs the bounds as two independently named struct
// fields instead, use the convert/extra override mechanism of cwiregen to
// flatten and reassemble the interval.
type CRange[T Scalar] struct {
	Start T
	End   T
}

// FromOwned applies the element conversion independently to both bounds.
func (r *CRange[T]) FromOwned(owned Range[T]) error {
	r.Start, r.End = owned.Start, owned.End
	return nil
}

// ToOwned rebuilds the owned interval.
func (r *CRange[T]) ToOwned() (Range[T], error) {
	return Range[T]{Start: r.Start, End: r.End}, nil
}

// Release is a no-op: a range owns no C-side resources.
func (r *CRange[T]) Release() error { return nil }
