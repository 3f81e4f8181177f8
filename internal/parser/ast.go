package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"
)

// SourceFile is the result of parsing one Go source file.
type SourceFile struct {
	Package string
	Structs []*StructSpec
}

// StructSpec represents a parsed struct with a @cwire annotation.
type StructSpec struct {
	Name   string
	Anno   *Annotation
	Fields []Field
}

// Field represents one named struct field. Tag is nil when the field
// carries no cwire tag.
type Field struct {
	Name       string
	Type       ast.Expr
	TypeString string
	Tag        *FieldTag
}

// ParseFile parses a Go source file and extracts structs annotated with
// @cwire.
func ParseFile(filename string) (*SourceFile, error) {
	return ParseSource(filename, nil)
}

// ParseSource is ParseFile over in-memory source, per go/parser conventions.
func ParseSource(filename string, src any) (*SourceFile, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	structs, err := extractStructs(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &SourceFile{
		Package: file.Name.Name,
		Structs: structs,
	}, nil
}

func extractStructs(file *ast.File) ([]*StructSpec, error) {
	var structs []*StructSpec

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue // Not a struct
			}

			// The annotation sits on the type spec inside grouped
			// declarations, on the decl otherwise.
			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}
			anno, found, err := extractAnnotation(doc)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", typeSpec.Name.Name, err)
			}
			if !found {
				continue // No @cwire, skip this type
			}
			if anno.Target == "" {
				return nil, fmt.Errorf("type %s: @cwire annotation without target=", typeSpec.Name.Name)
			}

			fields, err := extractFields(structType)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", typeSpec.Name.Name, err)
			}

			structs = append(structs, &StructSpec{
				Name:   typeSpec.Name.Name,
				Anno:   anno,
				Fields: fields,
			})
		}
	}

	return structs, nil
}

func extractAnnotation(doc *ast.CommentGroup) (*Annotation, bool, error) {
	if doc == nil {
		return nil, false, nil
	}

	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	return FindAnnotation(lines)
}

func extractFields(structType *ast.StructType) ([]Field, error) {
	var fields []Field

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded fields are not supported")
		}

		var tag *FieldTag
		if field.Tag != nil {
			structTag := reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
			if value, ok := structTag.Lookup("cwire"); ok {
				parsed, err := ParseTag(value)
				if err != nil {
					return nil, fmt.Errorf("field %s: %w", field.Names[0].Name, err)
				}
				tag = parsed
			}
		}

		for _, name := range field.Names {
			fields = append(fields, Field{
				Name:       name.Name,
				Type:       field.Type,
				TypeString: ExprString(field.Type),
				Tag:        tag,
			})
		}
	}

	return fields, nil
}

// ExprString renders a type expression back to source form. Covers the
// expression kinds a C-compatible struct field can use.
func ExprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name

	case *ast.SelectorExpr:
		return ExprString(t.X) + "." + t.Sel.Name

	case *ast.StarExpr:
		return "*" + ExprString(t.X)

	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + ExprString(t.Elt)
		}
		return fmt.Sprintf("[%s]%s", ExprString(t.Len), ExprString(t.Elt))

	case *ast.IndexExpr:
		return fmt.Sprintf("%s[%s]", ExprString(t.X), ExprString(t.Index))

	case *ast.IndexListExpr:
		params := make([]string, len(t.Indices))
		for i, index := range t.Indices {
			params[i] = ExprString(index)
		}
		return fmt.Sprintf("%s[%s]", ExprString(t.X), strings.Join(params, ", "))

	case *ast.BasicLit:
		return t.Value

	default:
		return "unknown"
	}
}
