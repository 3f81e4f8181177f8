// Package example shows the full annotation surface on a small breakfast
// domain. The _cwire.go file is checked in so the package builds without
// running the generator first.
package example

import "github.com/cwire/cwire"

// Pancake is the owned side of the boundary: plain Go values, optionality
// expressed with pointers.
type Pancake struct {
	Name        string
	Description *string
	Range       cwire.Range[float32]
	Dummy       Dummy
	Sauce       *Sauce
	Toppings    []Topping
	Layers      *[]Layer
	IsDelicious bool
}

type Sauce struct {
	Volume      float32
	Temperature float32
}

type Topping struct {
	Amount int32
}

type Layer struct {
	Number   int32
	Subtitle *string
}

type Dummy struct {
	Count int32
	Ratio float64
}
