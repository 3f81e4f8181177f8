package parser

import (
	"fmt"
	"strings"
)

// FieldTag holds the parsed cwire:"..." struct tag of one field.
type FieldTag struct {
	Nullable   bool   // pointer field may legitimately be null
	TargetName string // owned-side field name when it differs
	Convert    string // verbatim FromOwned expression, `owned` in scope
}

// ParseTag parses the value of a cwire struct tag, e.g.
//
//	cwire:"nullable"
//	cwire:"target=SomeName"
//	cwire:"nullable,target=SomeName"
//	cwire:"convert=int32(owned.Amount * 2)"
//
// Options are comma-separated. convert= must come last: it consumes the
// rest of the tag verbatim, commas included.
func ParseTag(tag string) (*FieldTag, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, fmt.Errorf("empty cwire tag")
	}

	parsed := &FieldTag{}

	if idx := strings.Index(tag, "convert="); idx >= 0 {
		parsed.Convert = strings.TrimSpace(tag[idx+len("convert="):])
		if parsed.Convert == "" {
			return nil, fmt.Errorf("convert= requires an expression")
		}
		tag = strings.TrimSuffix(tag[:idx], ",")
	}

	if tag == "" {
		return parsed, nil
	}

	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		key, value, _ := strings.Cut(opt, "=")
		switch key {
		case "nullable":
			if value != "" {
				return nil, fmt.Errorf("nullable takes no value, got: %s", opt)
			}
			parsed.Nullable = true

		case "target":
			if value == "" {
				return nil, fmt.Errorf("target= requires a field name")
			}
			parsed.TargetName = value

		default:
			return nil, fmt.Errorf("unknown tag option: %s", key)
		}
	}

	return parsed, nil
}
