package codegen

import (
	"fmt"
	"strings"

	"github.com/cwire/cwire/internal/classifier"
)

// GenerateFromOwned generates the FromOwned method: owned value in, C
// representation out, ownership of every pointer field transferred to
// the receiver.
func (g *Generator) GenerateFromOwned() string {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// FromOwned fills c with the C representation of the given %s,\n", g.spec.Anno.Target))
	code.WriteString("// consuming it. The receiver owns all transferred memory afterwards.\n")
	code.WriteString(fmt.Sprintf("func (c *%s) FromOwned(owned %s) error {\n", g.spec.Name, g.spec.Anno.Target))

	for _, d := range g.fields {
		code.WriteString(fmt.Sprintf("\t// %s %s\n", d.Name, d.DeclaredType))
		code.WriteString(g.fromOwnedField(d))
		code.WriteString("\n")
	}

	code.WriteString("\treturn nil\n")
	code.WriteString("}\n")

	return code.String()
}

func (g *Generator) fromOwnedField(d *classifier.Descriptor) string {
	if d.Convert != "" {
		// Override expression, emitted verbatim.
		return fmt.Sprintf("\tc.%s = %s\n", d.Name, d.Convert)
	}

	owned := "owned." + d.TargetName
	if d.Nullable {
		return g.fromOwnedNullable(d, owned)
	}

	switch {
	case d.IsString:
		return fmt.Sprintf(`	{
		p, err := cwire.NewCString(%s)
		if err != nil {
			return fmt.Errorf("field %s: %%w", err)
		}
		c.%s = p
	}
`, owned, d.Name, d.Name)

	case d.IsBool:
		return fmt.Sprintf("\tc.%s = %s\n", d.Name, rawChain("cwire.CBoolOf("+owned+")", d.PtrDepth))

	case d.IsPrimitive:
		return fmt.Sprintf("\tc.%s = %s\n", d.Name, rawChain(owned, d.PtrDepth))

	default:
		if d.PtrDepth == 0 {
			return fmt.Sprintf(`	if err := c.%s.FromOwned(%s); err != nil {
		return fmt.Errorf("field %s: %%w", err)
	}
`, d.Name, owned, d.Name)
		}
		return fmt.Sprintf(`	{
		var v %s
		if err := v.FromOwned(%s); err != nil {
			return fmt.Errorf("field %s: %%w", err)
		}
		c.%s = %s
	}
`, d.ValueType, owned, d.Name, d.Name, rawChain("v", d.PtrDepth))
	}
}

// fromOwnedNullable guards the conversion on the owned-side pointer and
// writes an explicit nil otherwise.
func (g *Generator) fromOwnedNullable(d *classifier.Descriptor, owned string) string {
	var body string
	deref := "*" + owned

	switch {
	case d.IsString:
		body = fmt.Sprintf(`		p, err := cwire.NewCString(%s)
		if err != nil {
			return fmt.Errorf("field %s: %%w", err)
		}
		c.%s = p
`, deref, d.Name, d.Name)

	case d.IsBool:
		body = fmt.Sprintf("\t\tc.%s = %s\n", d.Name, rawChain("cwire.CBoolOf("+deref+")", d.PtrDepth))

	case d.IsPrimitive:
		body = fmt.Sprintf("\t\tc.%s = %s\n", d.Name, rawChain(deref, d.PtrDepth))

	default:
		body = fmt.Sprintf(`		var v %s
		if err := v.FromOwned(%s); err != nil {
			return fmt.Errorf("field %s: %%w", err)
		}
		c.%s = %s
`, d.ValueType, deref, d.Name, d.Name, rawChain("v", d.PtrDepth))
	}

	return fmt.Sprintf("\tif %s != nil {\n%s\t} else {\n\t\tc.%s = nil\n\t}\n", owned, body, d.Name)
}
