package fixtures

import "github.com/cwire/cwire"

// Pancake is the owned side of the fixture.
type Pancake struct {
	Name      string
	RangeBase float32
	Amount    int32
	Toppings  []Topping
}

type Topping struct {
	Amount int32
}

// CPancake mirrors Pancake across the boundary.
//
// @cwire target=Pancake
// @cwire extra SomeInfo = ""
type CPancake struct {
	Name        *cwire.CChar
	Description *cwire.CChar `cwire:"nullable"`
	Start       float32      `cwire:"target=RangeBase"`
	Amount      int32        `cwire:"convert=owned.Amount * 2"`
	Toppings    cwire.CArray[CTopping, Topping, *CTopping]
}

type (
	// CTopping sits in a grouped declaration, annotation on the spec.
	//
	// @cwire target=Topping noclose
	CTopping struct {
		Amount int32
	}
)

// NotAnnotated has no @cwire line and is skipped.
type NotAnnotated struct {
	X int
}
