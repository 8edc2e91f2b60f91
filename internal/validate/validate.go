package validate

import (
	"regexp"
	"strconv"
)

var reID = regexp.MustCompile(`^[0-9]{1,18}$`)

// Truthy reports whether a decoded JSON value counts as supplied: not null,
// false, zero or the empty string. Whitespace counts as content.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	default:
		return true
	}
}

// ID parses a path identifier made of decimal digits only. Signs, decimal
// points and anything else are rejected, which callers treat as a lookup
// that matched nothing.
func ID(s string) (int64, bool) {
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
