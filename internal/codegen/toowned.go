package codegen

import (
	"fmt"
	"strings"

	"github.com/cwire/cwire/internal/classifier"
)

// GenerateToOwned generates the ToOwned method: C representation in,
// owned value out. The receiver is only borrowed and stays valid, so the
// call is repeatable.
func (g *Generator) GenerateToOwned() string {
	var code strings.Builder
	target := g.spec.Anno.Target

	code.WriteString(fmt.Sprintf("// ToOwned rebuilds a %s from the C representation. The receiver\n", target))
	code.WriteString("// is borrowed, not consumed, so the call is repeatable.\n")
	code.WriteString(fmt.Sprintf("func (c *%s) ToOwned() (%s, error) {\n", g.spec.Name, target))
	code.WriteString(fmt.Sprintf("\tvar owned %s\n\n", target))

	for _, d := range g.fields {
		if d.SkipToOwned() {
			continue
		}
		code.WriteString(fmt.Sprintf("\t// %s %s\n", d.Name, d.DeclaredType))
		code.WriteString(g.toOwnedField(d))
		code.WriteString("\n")
	}

	for _, extra := range g.spec.Anno.Extras {
		code.WriteString(fmt.Sprintf("\towned.%s = %s\n", extra.Name, extra.Expr))
	}
	if len(g.spec.Anno.Extras) > 0 {
		code.WriteString("\n")
	}

	code.WriteString("\treturn owned, nil\n")
	code.WriteString("}\n")

	return code.String()
}

func (g *Generator) toOwnedField(d *classifier.Descriptor) string {
	zero := g.spec.Anno.Target + "{}"

	if d.PtrDepth > 0 {
		if d.IsString {
			return g.toOwnedString(d, zero)
		}
		return g.toOwnedPointer(d, zero)
	}

	switch {
	case d.IsBool:
		return fmt.Sprintf("\towned.%s = c.%s.Bool()\n", d.TargetName, d.Name)

	case d.IsPrimitive:
		return fmt.Sprintf("\towned.%s = c.%s\n", d.TargetName, d.Name)

	default:
		return fmt.Sprintf(`	{
		v, err := c.%s.ToOwned()
		if err != nil {
			return %s, fmt.Errorf("field %s: %%w", err)
		}
		owned.%s = v
	}
`, d.Name, zero, d.Name, d.TargetName)
	}
}

func (g *Generator) toOwnedString(d *classifier.Descriptor, zero string) string {
	if d.Nullable {
		return fmt.Sprintf(`	if c.%s != nil {
		s, err := cwire.GoString(c.%s)
		if err != nil {
			return %s, fmt.Errorf("field %s: %%w", err)
		}
		owned.%s = &s
	}
`, d.Name, d.Name, zero, d.Name, d.TargetName)
	}
	return fmt.Sprintf(`	{
		s, err := cwire.GoString(c.%s)
		if err != nil {
			return %s, fmt.Errorf("field %s: %%w", err)
		}
		owned.%s = s
	}
`, d.Name, zero, d.Name, d.TargetName)
}

// toOwnedPointer walks the pointer chain with null-checked borrows and
// converts the pointee.
func (g *Generator) toOwnedPointer(d *classifier.Descriptor, zero string) string {
	var code strings.Builder

	if d.Nullable {
		code.WriteString(fmt.Sprintf("\tif c.%s != nil {\n", d.Name))
	} else {
		code.WriteString("\t{\n")
	}

	src := "c." + d.Name
	for i := 1; i <= d.PtrDepth; i++ {
		code.WriteString(fmt.Sprintf("\t\tp%d, err := cwire.Borrow(%s)\n", i, src))
		code.WriteString("\t\tif err != nil {\n")
		code.WriteString(fmt.Sprintf("\t\t\treturn %s, fmt.Errorf(\"field %s: %%w\", err)\n", zero, d.Name))
		code.WriteString("\t\t}\n")
		src = fmt.Sprintf("*p%d", i)
	}
	last := fmt.Sprintf("p%d", d.PtrDepth)

	switch {
	case d.IsBool, d.IsPrimitive:
		var value string
		if d.IsBool {
			value = last + ".Bool()"
		} else {
			value = "*" + last
		}
		if d.Nullable {
			code.WriteString(fmt.Sprintf("\t\tv := %s\n", value))
			code.WriteString(fmt.Sprintf("\t\towned.%s = &v\n", d.TargetName))
		} else {
			code.WriteString(fmt.Sprintf("\t\towned.%s = %s\n", d.TargetName, value))
		}

	default:
		code.WriteString(fmt.Sprintf("\t\tv, err := %s.ToOwned()\n", last))
		code.WriteString("\t\tif err != nil {\n")
		code.WriteString(fmt.Sprintf("\t\t\treturn %s, fmt.Errorf(\"field %s: %%w\", err)\n", zero, d.Name))
		code.WriteString("\t\t}\n")
		if d.Nullable {
			code.WriteString(fmt.Sprintf("\t\towned.%s = &v\n", d.TargetName))
		} else {
			code.WriteString(fmt.Sprintf("\t\towned.%s = v\n", d.TargetName))
		}
	}

	code.WriteString("\t}\n")
	return code.String()
}
