package tree

import (
	"sort"
	"strings"
)

// normalizeArgs folds a heterogeneous argument list into a content string
// and an ordered attribute list.
//
// Strings are space-joined, in order, into content. Attr, []Attr, and
// map[string]string entries merge into attributes with last-write-wins
// semantics on key collisions; map entries are applied in sorted-key order
// because Go maps carry no insertion order. nil and unrecognized argument
// kinds are silently ignored rather than rejected.
func normalizeArgs(args []any) (string, []Attr) {
	var parts []string
	var attrs []Attr

	set := func(key, value string) {
		for i := range attrs {
			if attrs[i].Key == key {
				attrs[i].Value = value
				return
			}
		}
		attrs = append(attrs, Attr{Key: key, Value: value})
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case string:
			parts = append(parts, v)

		case Attr:
			if v.Key != "" {
				set(v.Key, v.Value)
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					set(a.Key, a.Value)
				}
			}

		case map[string]string:
			keys := make([]string, 0, len(v))
			for k := range v {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				set(k, v[k])
			}
		}
	}

	return strings.Join(parts, " "), attrs
}
