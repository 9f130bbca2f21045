package gomap

import (
	"fmt"
	"strings"
)

// TagKey is the struct tag key read by Value and by generated code.
const TagKey = "jsonenc"

// FieldTag holds the field options of a `jsonenc:"..."` struct tag.
type FieldTag struct {
	// Name replaces the Go field name in the output when not empty.
	Name string

	// Omit drops the field (`omit` or `field=-`).
	Omit bool

	// OmitEmpty drops the field when it holds its zero value.
	OmitEmpty bool
}

// ParseFieldTag parses the value of a jsonenc struct tag.
func ParseFieldTag(tag string) (FieldTag, error) {
	res := FieldTag{}
	parsed, err := ParseStructTag(tag)
	if err != nil {
		return res, err
	}
	for k, v := range parsed {
		switch k {
		case "field":
			if v == "-" {
				res.Omit = true
				continue
			}
			res.Name = v
		case "omit":
			res.Omit = true
		case "omitempty":
			res.OmitEmpty = true
		default:
			return res, fmt.Errorf("invalid tag: unknown option %q", k)
		}
	}
	return res, nil
}

// ParseStructTag parses a struct tag value into key value pairs.
// Parts are separated by commas or spaces: `jsonenc:"field=id,omitempty"`.
// Values may be quoted to contain separators: `jsonenc:"field='the id'"`.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}

	var parts []string
	var current strings.Builder
	inSingleQuote := false
	inDoubleQuote := false
	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}

	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			current.WriteByte(c)
		case c == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			current.WriteByte(c)
		case (c == ',' || c == ' ') && !inSingleQuote && !inDoubleQuote:
			flush()
		default:
			current.WriteByte(c)
		}
	}
	if inSingleQuote || inDoubleQuote {
		return nil, fmt.Errorf("invalid tag: unterminated quote in %q", tag)
	}
	flush()

	for _, part := range parts {
		idx := strings.Index(part, "=")
		if idx < 0 {
			result[part] = ""
			continue
		}
		key := strings.TrimSpace(part[:idx])
		if key == "" {
			return nil, fmt.Errorf("invalid tag: empty key in %q", part)
		}
		result[key] = unquoteValue(strings.TrimSpace(part[idx+1:]))
	}
	return result, nil
}

// unquoteValue removes one pair of surrounding single or double quotes.
func unquoteValue(v string) string {
	if len(v) < 2 {
		return v
	}
	if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
		return v[1 : len(v)-1]
	}
	return v
}
