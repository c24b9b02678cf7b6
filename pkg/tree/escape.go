package tree

import "strings"

// escapeAttrValue escapes an attribute value for inclusion inside double
// quotes. Quote and backslash characters are prefixed with a backslash;
// nothing else is sanitized — markup-safety of names and values beyond
// this is the caller's responsibility.
func escapeAttrValue(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + 2)

	for _, r := range s {
		switch r {
		case '"', '\\':
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}

	return buf.String()
}
