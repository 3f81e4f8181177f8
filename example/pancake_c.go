package example

import "github.com/cwire/cwire"

//go:generate go run github.com/cwire/cwire/cmd/cwiregen pancake_c.go

// CPancake mirrors Pancake across the boundary. The owned Range field is
// flattened into Start and End: the overrides split it going out, the
// extra clause rebuilds it coming back.
//
// @cwire target=Pancake
// @cwire extra Range = cwire.Range[float32]{Start: c.Start, End: c.End}
type CPancake struct {
	Name        *cwire.CChar
	Description *cwire.CChar `cwire:"nullable"`
	Start       float32      `cwire:"convert=owned.Range.Start"`
	End         float32      `cwire:"convert=owned.Range.End"`
	Dummy       CDummy
	Sauce       *CSauce `cwire:"nullable"`
	Toppings    cwire.CArray[CTopping, Topping, *CTopping]
	Layers      *cwire.CArray[CLayer, Layer, *CLayer] `cwire:"nullable"`
	IsDelicious cwire.CBool
}

// CSauce demonstrates renaming: the C side keeps the unit suffix.
//
// @cwire target=Sauce
type CSauce struct {
	Volume       float32
	TemperatureC float32 `cwire:"target=Temperature"`
}

// @cwire target=Dummy noclose
type CDummy struct {
	Count int32
	Ratio float64
}

// @cwire target=Topping
type CTopping struct {
	Amount int32
}

// @cwire target=Layer
type CLayer struct {
	Number   int32
	Subtitle *cwire.CChar `cwire:"nullable"`
}
