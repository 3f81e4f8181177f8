package codegen

import (
	"fmt"
	"strings"

	"github.com/cwire/cwire/internal/classifier"
)

// GenerateRelease generates the Release method: every pointer field is
// reclaimed exactly once and set to nil, so a second Release reports
// null pointers instead of double-freeing.
func (g *Generator) GenerateRelease() string {
	var code strings.Builder

	code.WriteString("// Release reclaims every allocation the receiver owns. Pointer fields\n")
	code.WriteString("// are nilled out, so calling Release twice fails on a null pointer\n")
	code.WriteString("// rather than freeing twice.\n")
	code.WriteString(fmt.Sprintf("func (c *%s) Release() error {\n", g.spec.Name))

	for _, d := range g.fields {
		snippet := g.releaseField(d)
		if snippet == "" {
			continue
		}
		code.WriteString(fmt.Sprintf("\t// %s %s\n", d.Name, d.DeclaredType))
		code.WriteString(snippet)
		code.WriteString("\n")
	}

	code.WriteString("\treturn nil\n")
	code.WriteString("}\n")

	return code.String()
}

// releaseField emits the reclaim code for one field. Fields copied by
// value have nothing to release.
func (g *Generator) releaseField(d *classifier.Descriptor) string {
	if d.PtrDepth == 0 {
		if d.IsBool || d.IsPrimitive {
			return ""
		}
		return fmt.Sprintf(`	if err := c.%s.Release(); err != nil {
		return fmt.Errorf("field %s: %%w", err)
	}
`, d.Name, d.Name)
	}

	if d.IsString {
		body := fmt.Sprintf(`	if err := cwire.FreeCString(c.%s); err != nil {
		return fmt.Errorf("field %s: %%w", err)
	}
	c.%s = nil
`, d.Name, d.Name, d.Name)
		if d.Nullable {
			return wrapNilGuard(d.Name, body)
		}
		return body
	}

	body := g.releasePointer(d)
	if d.Nullable {
		return wrapNilGuard(d.Name, body)
	}
	return "\t{\n" + indent(body) + "\t}\n"
}

// releasePointer unwinds a pointer chain, reclaiming each level, and nils
// the field. Lines come back at one tab; the caller adds the scope.
func (g *Generator) releasePointer(d *classifier.Descriptor) string {
	var code strings.Builder

	src := "c." + d.Name
	for i := 1; i < d.PtrDepth; i++ {
		code.WriteString(fmt.Sprintf("\tp%d, err := cwire.FromRaw(%s)\n", i, src))
		code.WriteString("\tif err != nil {\n")
		code.WriteString(fmt.Sprintf("\t\treturn fmt.Errorf(\"field %s: %%w\", err)\n", d.Name))
		code.WriteString("\t}\n")
		src = fmt.Sprintf("p%d", i)
	}

	if d.IsBool || d.IsPrimitive {
		code.WriteString(fmt.Sprintf("\tif err := cwire.DropRaw(%s); err != nil {\n", src))
		code.WriteString(fmt.Sprintf("\t\treturn fmt.Errorf(\"field %s: %%w\", err)\n", d.Name))
		code.WriteString("\t}\n")
	} else {
		code.WriteString(fmt.Sprintf("\tv, err := cwire.FromRaw(%s)\n", src))
		code.WriteString("\tif err != nil {\n")
		code.WriteString(fmt.Sprintf("\t\treturn fmt.Errorf(\"field %s: %%w\", err)\n", d.Name))
		code.WriteString("\t}\n")
		code.WriteString("\tif err := v.Release(); err != nil {\n")
		code.WriteString(fmt.Sprintf("\t\treturn fmt.Errorf(\"field %s: %%w\", err)\n", d.Name))
		code.WriteString("\t}\n")
	}

	code.WriteString(fmt.Sprintf("\tc.%s = nil\n", d.Name))

	return code.String()
}

func wrapNilGuard(field, body string) string {
	return fmt.Sprintf("\tif c.%s != nil {\n%s\t}\n", field, indent(body))
}

// indent shifts every line of body one tab right.
func indent(body string) string {
	return "\t" + strings.ReplaceAll(strings.TrimSuffix(body, "\n"), "\n", "\n\t") + "\n"
}
