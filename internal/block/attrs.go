package block

import "strings"

// ParseAttrs parses the attribute portion of a fence info string into an
// ordered attribute list. Attributes are whitespace-separated key=value
// pairs; values may be double-quoted to include spaces. A bare word becomes
// an attribute with an empty value so unknown flags still pass through.
func ParseAttrs(info string) []Attr {
	var attrs []Attr
	for _, field := range splitFields(info) {
		key, value, found := strings.Cut(field, "=")
		if key == "" {
			continue
		}
		if !found {
			attrs = append(attrs, Attr{Key: key})
			continue
		}
		attrs = append(attrs, Attr{Key: key, Value: unquote(value)})
	}
	return attrs
}

// splitFields splits on spaces and tabs while keeping double-quoted spans intact.
func splitFields(s string) []string {
	var fields []string
	var current strings.Builder
	inQuote := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			current.WriteRune(r)
		case !inQuote && (r == ' ' || r == '\t'):
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		fields = append(fields, current.String())
	}
	return fields
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
