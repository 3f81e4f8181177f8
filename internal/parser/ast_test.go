package parser

import (
	"strings"
	"testing"
)

func TestParseFile(t *testing.T) {
	src, err := ParseFile("testdata/pancake.go")
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}

	if src.Package != "fixtures" {
		t.Errorf("Package = %q, want %q", src.Package, "fixtures")
	}

	// Pancake, Topping and NotAnnotated carry no @cwire annotation.
	if len(src.Structs) != 2 {
		t.Fatalf("ParseFile() found %d structs, want 2", len(src.Structs))
	}

	pancake := src.Structs[0]
	if pancake.Name != "CPancake" {
		t.Errorf("Structs[0].Name = %q, want %q", pancake.Name, "CPancake")
	}
	if pancake.Anno.Target != "Pancake" {
		t.Errorf("CPancake.Anno.Target = %q, want %q", pancake.Anno.Target, "Pancake")
	}
	if pancake.Anno.NoClose {
		t.Error("CPancake.Anno.NoClose = true, want false")
	}
	if len(pancake.Anno.Extras) != 1 || pancake.Anno.Extras[0].Name != "SomeInfo" {
		t.Errorf("CPancake.Anno.Extras = %+v, want one SomeInfo entry", pancake.Anno.Extras)
	}
	if len(pancake.Fields) != 5 {
		t.Fatalf("CPancake has %d fields, want 5", len(pancake.Fields))
	}

	f0 := pancake.Fields[0]
	if f0.Name != "Name" || f0.TypeString != "*cwire.CChar" {
		t.Errorf("fields[0] = %s %s, want Name *cwire.CChar", f0.Name, f0.TypeString)
	}
	if f0.Tag != nil {
		t.Errorf("fields[0].Tag = %+v, want nil", f0.Tag)
	}

	f1 := pancake.Fields[1]
	if f1.Tag == nil || !f1.Tag.Nullable {
		t.Errorf("fields[1].Tag = %+v, want nullable", f1.Tag)
	}

	f2 := pancake.Fields[2]
	if f2.Tag == nil || f2.Tag.TargetName != "RangeBase" {
		t.Errorf("fields[2].Tag = %+v, want target=RangeBase", f2.Tag)
	}

	f3 := pancake.Fields[3]
	if f3.Tag == nil || f3.Tag.Convert != "owned.Amount * 2" {
		t.Errorf("fields[3].Tag = %+v, want convert", f3.Tag)
	}

	f4 := pancake.Fields[4]
	if f4.TypeString != "cwire.CArray[CTopping, Topping, *CTopping]" {
		t.Errorf("fields[4].TypeString = %q", f4.TypeString)
	}

	// Grouped declaration, annotation on the type spec itself.
	topping := src.Structs[1]
	if topping.Name != "CTopping" {
		t.Errorf("Structs[1].Name = %q, want %q", topping.Name, "CTopping")
	}
	if topping.Anno.Target != "Topping" || !topping.Anno.NoClose {
		t.Errorf("CTopping.Anno = %+v, want target=Topping noclose", topping.Anno)
	}
}

func TestParseSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			"annotation without target",
			`package p
// @cwire noclose
type CFoo struct{ X int32 }`,
			"without target=",
		},
		{
			"embedded field",
			`package p
// @cwire target=Foo
type CFoo struct{ CBar }`,
			"embedded fields",
		},
		{
			"malformed tag",
			`package p
// @cwire target=Foo
type CFoo struct {
	X int32 ` + "`cwire:\"bogus\"`" + `
}`,
			"unknown tag option",
		},
		{
			"malformed annotation",
			`package p
// @cwire target=Foo wat=1
type CFoo struct{ X int32 }`,
			"unknown parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSource("test.go", tt.src)
			if err == nil {
				t.Fatal("ParseSource() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseSourceMultipleNames(t *testing.T) {
	src, err := ParseSource("test.go", `package p
// @cwire target=Foo
type CFoo struct {
	A, B int32
}`)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}

	fields := src.Structs[0].Fields
	if len(fields) != 2 || fields[0].Name != "A" || fields[1].Name != "B" {
		t.Errorf("fields = %+v, want A and B", fields)
	}
}
