package classifier

import (
	"strings"
	"testing"

	"github.com/cwire/cwire/internal/parser"
)

// fields parses src as a struct body and returns the parsed fields.
func fields(t *testing.T, body string) []parser.Field {
	t.Helper()
	src := "package p\n// @cwire target=Foo\ntype CFoo struct {\n" + body + "\n}"
	parsed, err := parser.ParseSource("test.go", src)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}
	return parsed.Structs[0].Fields
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  Descriptor
	}{
		{
			"primitive",
			"Amount int32",
			Descriptor{Elem: "int32", ValueType: "int32", IsPrimitive: true},
		},
		{
			"string buffer",
			"Name *cwire.CChar",
			Descriptor{Elem: "cwire.CChar", ValueType: "cwire.CChar", PtrDepth: 1, IsString: true},
		},
		{
			"nullable string",
			"Description *cwire.CChar `cwire:\"nullable\"`",
			Descriptor{Elem: "cwire.CChar", ValueType: "cwire.CChar", PtrDepth: 1, IsString: true, Nullable: true},
		},
		{
			"bool wrapper",
			"IsDelicious cwire.CBool",
			Descriptor{Elem: "cwire.CBool", ValueType: "cwire.CBool", IsBool: true},
		},
		{
			"nested struct",
			"Dummy CDummy",
			Descriptor{Elem: "CDummy", ValueType: "CDummy"},
		},
		{
			"nullable struct pointer",
			"Sauce *CSauce `cwire:\"nullable\"`",
			Descriptor{Elem: "CSauce", ValueType: "CSauce", PtrDepth: 1, Nullable: true},
		},
		{
			"generic array",
			"Toppings cwire.CArray[CTopping, Topping, *CTopping]",
			Descriptor{
				Elem:       "cwire.CArray",
				TypeParams: "CTopping, Topping, *CTopping",
				ValueType:  "cwire.CArray[CTopping, Topping, *CTopping]",
			},
		},
		{
			"generic range",
			"Rng cwire.CRange[int64]",
			Descriptor{Elem: "cwire.CRange", TypeParams: "int64", ValueType: "cwire.CRange[int64]"},
		},
		{
			"fixed array",
			"Salt [16]byte",
			Descriptor{Elem: "[16]byte", ValueType: "[16]byte", IsPrimitive: true, IsArray: true},
		},
		{
			"double indirection with nullable",
			"Glob **int32 `cwire:\"nullable\"`",
			Descriptor{Elem: "int32", ValueType: "int32", PtrDepth: 2, Nullable: true, IsPrimitive: true},
		},
		{
			"renamed field",
			"Start float32 `cwire:\"target=RangeBase\"`",
			Descriptor{Elem: "float32", ValueType: "float32", IsPrimitive: true, TargetName: "RangeBase"},
		},
		{
			"convert override",
			"Amount int32 `cwire:\"convert=owned.Amount * 2\"`",
			Descriptor{Elem: "int32", ValueType: "int32", IsPrimitive: true, Convert: "owned.Amount * 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := fields(t, tt.field)
			got, err := Classify(fs[0])
			if err != nil {
				t.Fatalf("Classify() error: %v", err)
			}

			// Name defaults are filled by Classify.
			if tt.want.Name == "" {
				tt.want.Name = fs[0].Name
			}
			if tt.want.TargetName == "" {
				tt.want.TargetName = tt.want.Name
			}
			tt.want.DeclaredType = fs[0].TypeString

			if *got != tt.want {
				t.Errorf("Classify() =\n%+v\nwant\n%+v", *got, tt.want)
			}
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr string
	}{
		{"bare bool", "Flag bool", "use cwire.CBool"},
		{"bare string", "Name string", "use *cwire.CChar"},
		{"slice", "Items []int32", "use cwire.CArray"},
		{"array of structs", "Pair [2]CTopping", "primitive elements"},
		{"naked double pointer", "Glob **int32", "nullable"},
		{"nullable non-pointer", "Amount int32 `cwire:\"nullable\"`", "pointer fields only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := fields(t, tt.field)
			_, err := Classify(fs[0])
			if err == nil {
				t.Fatal("Classify() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestClassifyAll(t *testing.T) {
	src := `package p
// @cwire target=Pancake
type CPancake struct {
	Name *cwire.CChar
	Bad  bool
}`
	parsed, err := parser.ParseSource("test.go", src)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}

	_, err = ClassifyAll(parsed.Structs[0])
	if err == nil {
		t.Fatal("ClassifyAll() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "CPancake") || !strings.Contains(err.Error(), "Bad") {
		t.Errorf("error %q should name the struct and the field", err)
	}
}
