package parser

import (
	"fmt"
	"strings"
)

// Annotation holds the merged @cwire annotation of one struct declaration.
type Annotation struct {
	Target  string       // owned counterpart type (required)
	NoClose bool         // suppress the Close scope-exit hook
	Extras  []ExtraField // owned-side fields synthesized in ToOwned
}

// ExtraField is one "@cwire extra Name = expr" clause. The expression is
// evaluated in the ToOwned body with the receiver `c` in scope.
type ExtraField struct {
	Name string
	Expr string
}

// ParseAnnotationLine applies a single comment line to anno.
//
// Recognized forms:
//
//	// @cwire target=Pancake
//	// @cwire target=Pancake noclose
//	// @cwire noclose
//	// @cwire extra FieldName = <expr>
//
// Params other than extra are space-separated key=value pairs or bare
// flags. Returns false when the line carries no @cwire annotation at all.
func ParseAnnotationLine(line string, anno *Annotation) (bool, error) {
	line = strings.TrimSpace(line)
	if line != "@cwire" && !strings.HasPrefix(line, "@cwire ") {
		return false, nil
	}

	params := strings.TrimSpace(strings.TrimPrefix(line, "@cwire"))
	if params == "" {
		return true, fmt.Errorf("@cwire annotation without parameters")
	}

	// Extra-field clause: everything after the first '=' is the expression.
	if rest, ok := strings.CutPrefix(params, "extra "); ok {
		name, expr, found := strings.Cut(rest, "=")
		name = strings.TrimSpace(name)
		expr = strings.TrimSpace(expr)
		if !found || name == "" || expr == "" {
			return true, fmt.Errorf("malformed extra clause: %q (want: extra Name = expr)", params)
		}
		if strings.ContainsAny(name, " \t") {
			return true, fmt.Errorf("extra field name %q is not an identifier", name)
		}
		anno.Extras = append(anno.Extras, ExtraField{Name: name, Expr: expr})
		return true, nil
	}

	for _, pair := range strings.Fields(params) {
		key, value, _ := strings.Cut(pair, "=")
		switch key {
		case "target":
			if value == "" {
				return true, fmt.Errorf("target= requires a type name")
			}
			anno.Target = value

		case "noclose":
			if value != "" {
				return true, fmt.Errorf("noclose takes no value, got: %s", pair)
			}
			anno.NoClose = true

		default:
			return true, fmt.Errorf("unknown parameter: %s", key)
		}
	}

	return true, nil
}

// FindAnnotation searches comment lines for @cwire annotations and merges
// them. Returns false if no line carried an annotation.
func FindAnnotation(comments []string) (*Annotation, bool, error) {
	anno := &Annotation{}
	found := false
	for _, comment := range comments {
		ok, err := ParseAnnotationLine(comment, anno)
		if err != nil {
			return nil, true, err
		}
		if ok {
			found = true
		}
	}
	if !found {
		return nil, false, nil
	}
	return anno, true, nil
}

// CleanComment removes comment markers from a line.
// "// @cwire target=Foo" → "@cwire target=Foo"
// "/* @cwire target=Foo */" → "@cwire target=Foo"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "//") {
		return strings.TrimSpace(strings.TrimPrefix(line, "//"))
	}

	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		return strings.TrimSpace(line)
	}

	return line
}
