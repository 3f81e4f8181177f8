package cwire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Hand-written element fixtures in the same shape cwiregen emits.

type topping struct{ Amount int32 }

type cTopping struct{ Amount int32 }

func (c *cTopping) FromOwned(owned topping) error {
	c.Amount = owned.Amount
	return nil
}

func (c *cTopping) ToOwned() (topping, error) {
	return topping{Amount: c.Amount}, nil
}

func (c *cTopping) Release() error { return nil }

type layer struct {
	Number   int32
	Subtitle *string
}

type cLayer struct {
	Number   int32
	Subtitle *CChar
}

func (c *cLayer) FromOwned(owned layer) error {
	c.Number = owned.Number
	if owned.Subtitle != nil {
		p, err := NewCString(*owned.Subtitle)
		if err != nil {
			return err
		}
		c.Subtitle = p
	} else {
		c.Subtitle = nil
	}
	return nil
}

func (c *cLayer) ToOwned() (layer, error) {
	var owned layer
	owned.Number = c.Number
	if c.Subtitle != nil {
		s, err := GoString(c.Subtitle)
		if err != nil {
			return layer{}, err
		}
		owned.Subtitle = &s
	}
	return owned, nil
}

func (c *cLayer) Release() error {
	if c.Subtitle != nil {
		if err := FreeCString(c.Subtitle); err != nil {
			return err
		}
		c.Subtitle = nil
	}
	return nil
}

func TestCArrayRoundTrip(t *testing.T) {
	want := []topping{{Amount: 2}, {Amount: 3}, {Amount: 5}}

	var arr CArray[cTopping, topping, *cTopping]
	require.NoError(t, arr.FromOwned(want))
	require.NotNil(t, arr.Data)
	require.EqualValues(t, 3, arr.Size)

	got, err := arr.ToOwned()
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(want, got))

	require.NoError(t, arr.Release())
	require.Nil(t, arr.Data)
	require.EqualValues(t, 0, arr.Size)
}

func TestCArrayEmpty(t *testing.T) {
	var arr CArray[cTopping, topping, *cTopping]
	require.NoError(t, arr.FromOwned(nil))

	// Null pointer is the canonical empty form.
	require.Nil(t, arr.Data)
	require.EqualValues(t, 0, arr.Size)

	// Empty comes back as the nil slice, exact under plain equality.
	got, err := arr.ToOwned()
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, arr.Release())
}

func TestCArrayEmptyInvariantViolation(t *testing.T) {
	arr := CArray[cTopping, topping, *cTopping]{Data: nil, Size: 4}
	_, err := arr.ToOwned()
	require.Error(t, err)
	require.Error(t, arr.Release())
}

func TestCArrayBorrowIsRepeatable(t *testing.T) {
	subtitle := "first layer"
	want := []layer{{Number: 1, Subtitle: &subtitle}, {Number: 2}}

	var arr CArray[cLayer, layer, *cLayer]
	require.NoError(t, arr.FromOwned(want))

	first, err := arr.ToOwned()
	require.NoError(t, err)
	second, err := arr.ToOwned()
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second))

	require.NoError(t, arr.Release())
}

func TestCArrayReleaseFreesElements(t *testing.T) {
	subtitle := "to be freed"
	var arr CArray[cLayer, layer, *cLayer]
	require.NoError(t, arr.FromOwned([]layer{{Number: 1, Subtitle: &subtitle}}))

	inner := unsafeFirstSubtitle(&arr)
	require.NotNil(t, inner)

	require.NoError(t, arr.Release())

	// The element's string pointer was reclaimed during Release.
	require.Panics(t, func() {
		_ = FreeCString(inner)
	})
}

func unsafeFirstSubtitle(arr *CArray[cLayer, layer, *cLayer]) *CChar {
	return arr.Data.Subtitle
}

func TestCArrayFromOwnedElementError(t *testing.T) {
	bad := "nul\x00inside"
	var arr CArray[cLayer, layer, *cLayer]
	err := arr.FromOwned([]layer{{Number: 1, Subtitle: &bad}})
	require.ErrorIs(t, err, ErrNulByte)
}
