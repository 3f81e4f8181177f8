// Package classifier decides, per C-struct field, which conversion shape
// the generator must emit.
package classifier

import (
	"fmt"
	"go/ast"
	"strings"

	"github.com/cwire/cwire/internal/parser"
)

// Descriptor is the classification of one field.
type Descriptor struct {
	Name         string // C-side field name
	TargetName   string // owned-side field name
	DeclaredType string // field type as written
	Elem         string // innermost type, stars and brackets stripped
	TypeParams   string // generic arguments of Elem, if any
	ValueType    string // Elem with its type params, the pointee type
	PtrDepth     int
	Nullable     bool
	IsString     bool // *cwire.CChar buffer
	IsBool       bool // cwire.CBool
	IsPrimitive  bool // copied by value, no release
	IsArray      bool // fixed-size array, copied by value
	Convert      string
}

// SkipToOwned reports whether ToOwned leaves the owned-side field to an
// extra clause. Convert overrides have no inverse.
func (d *Descriptor) SkipToOwned() bool {
	return d.Convert != ""
}

// Set of types copied across the boundary without conversion.
var primitives = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
	"float32": true, "float64": true,
}

// ClassifyAll classifies every field of spec, wrapping errors with the
// struct name.
func ClassifyAll(spec *parser.StructSpec) ([]*Descriptor, error) {
	descs := make([]*Descriptor, 0, len(spec.Fields))
	for _, field := range spec.Fields {
		d, err := Classify(field)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

// Classify maps one parsed field to its conversion shape.
func Classify(field parser.Field) (*Descriptor, error) {
	d := &Descriptor{
		Name:         field.Name,
		TargetName:   field.Name,
		DeclaredType: field.TypeString,
	}
	if field.Tag != nil {
		d.Nullable = field.Tag.Nullable
		d.Convert = field.Tag.Convert
		if field.Tag.TargetName != "" {
			d.TargetName = field.Tag.TargetName
		}
	}

	inner := field.Type
	for {
		star, ok := inner.(*ast.StarExpr)
		if !ok {
			break
		}
		inner = star.X
		d.PtrDepth++
	}

	switch t := inner.(type) {
	case *ast.Ident:
		d.Elem = t.Name
		d.ValueType = t.Name

	case *ast.SelectorExpr:
		d.Elem = parser.ExprString(t)
		d.ValueType = d.Elem

	case *ast.IndexExpr:
		d.Elem = parser.ExprString(t.X)
		d.TypeParams = parser.ExprString(t.Index)
		d.ValueType = parser.ExprString(t)

	case *ast.IndexListExpr:
		d.Elem = parser.ExprString(t.X)
		params := make([]string, len(t.Indices))
		for i, index := range t.Indices {
			params[i] = parser.ExprString(index)
		}
		d.TypeParams = strings.Join(params, ", ")
		d.ValueType = parser.ExprString(t)

	case *ast.ArrayType:
		if t.Len == nil {
			return nil, fmt.Errorf("field %s: slices have no C representation, use cwire.CArray", field.Name)
		}
		elt, ok := t.Elt.(*ast.Ident)
		if !ok || !primitives[elt.Name] {
			return nil, fmt.Errorf("field %s: fixed arrays must have primitive elements, got %s",
				field.Name, parser.ExprString(t.Elt))
		}
		d.IsArray = true
		d.Elem = parser.ExprString(t)
		d.ValueType = d.Elem

	default:
		return nil, fmt.Errorf("field %s: unsupported type %s", field.Name, field.TypeString)
	}

	switch d.Elem {
	case "bool":
		return nil, fmt.Errorf("field %s: bool has no stable C layout, use cwire.CBool", field.Name)
	case "string":
		return nil, fmt.Errorf("field %s: string has no C representation, use *cwire.CChar", field.Name)
	case "cwire.CBool", "CBool":
		d.IsBool = true
	case "cwire.CChar", "CChar":
		if d.PtrDepth == 1 {
			d.IsString = true
		} else {
			d.IsPrimitive = true
		}
	default:
		d.IsPrimitive = d.IsArray || primitives[d.Elem]
	}

	if d.PtrDepth > 1 && !d.Nullable {
		return nil, fmt.Errorf("field %s: %d levels of indirection require the nullable marker",
			field.Name, d.PtrDepth)
	}
	if d.Nullable && d.PtrDepth == 0 {
		return nil, fmt.Errorf("field %s: nullable applies to pointer fields only", field.Name)
	}

	return d, nil
}
