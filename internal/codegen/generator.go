// Package codegen renders conversion methods for annotated C-struct types.
package codegen

import (
	"fmt"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/cwire/cwire/internal/classifier"
	"github.com/cwire/cwire/internal/parser"
)

const header = "// Code generated by cwiregen. DO NOT EDIT.\n"

const runtimeImport = "github.com/cwire/cwire"

// Generator generates conversion code for one annotated struct.
type Generator struct {
	spec   *parser.StructSpec
	fields []*classifier.Descriptor
}

// NewGenerator creates a generator for spec with its classified fields.
func NewGenerator(spec *parser.StructSpec, fields []*classifier.Descriptor) *Generator {
	return &Generator{spec: spec, fields: fields}
}

// Generate returns all conversion code for this type, without package
// header or imports.
func (g *Generator) Generate() string {
	var out strings.Builder

	out.WriteString(g.GenerateConstructor())
	out.WriteString("\n")
	out.WriteString(g.GenerateFromOwned())
	out.WriteString("\n")
	out.WriteString(g.GenerateToOwned())
	out.WriteString("\n")
	out.WriteString(g.GenerateRelease())
	if !g.spec.Anno.NoClose {
		out.WriteString("\n")
		out.WriteString(g.GenerateClose())
	}

	return out.String()
}

// GenerateConstructor generates the NewCFoo helper allocating a converted
// value on the heap.
func (g *Generator) GenerateConstructor() string {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// New%s converts owned into a freshly allocated C representation.\n", g.spec.Name))
	code.WriteString("// Transfer it across the boundary with cwire.IntoRaw.\n")
	code.WriteString(fmt.Sprintf("func New%s(owned %s) (*%s, error) {\n", g.spec.Name, g.spec.Anno.Target, g.spec.Name))
	code.WriteString(fmt.Sprintf("\tc := &%s{}\n", g.spec.Name))
	code.WriteString("\tif err := c.FromOwned(owned); err != nil {\n")
	code.WriteString("\t\treturn nil, err\n")
	code.WriteString("\t}\n")
	code.WriteString("\treturn c, nil\n")
	code.WriteString("}\n")

	return code.String()
}

// GenerateClose generates the error-discarding release hook for defer
// sites.
func (g *Generator) GenerateClose() string {
	var code strings.Builder

	code.WriteString("// Close releases the C-side resources held by c, discarding any\n")
	code.WriteString("// release error. Use Release directly when the error matters.\n")
	code.WriteString(fmt.Sprintf("func (c *%s) Close() {\n", g.spec.Name))
	code.WriteString("\t_ = c.Release()\n")
	code.WriteString("}\n")

	return code.String()
}

// File renders a complete generated source file covering every annotated
// struct in src. Output is gofmt'd with unused imports pruned.
func File(src *parser.SourceFile) ([]byte, error) {
	var out strings.Builder

	out.WriteString(header)
	out.WriteString("\npackage " + src.Package + "\n\n")
	out.WriteString("import (\n\t\"fmt\"\n\n\t\"" + runtimeImport + "\"\n)\n\n")

	for i, spec := range src.Structs {
		fields, err := classifier.ClassifyAll(spec)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(NewGenerator(spec, fields).Generate())
	}

	formatted, err := imports.Process("generated.go", []byte(out.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, nil
}

// rawChain wraps expr in one cwire.IntoRaw call per pointer level.
func rawChain(expr string, depth int) string {
	for i := 0; i < depth; i++ {
		expr = fmt.Sprintf("cwire.IntoRaw(%s)", expr)
	}
	return expr
}
