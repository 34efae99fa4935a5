package ads

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EnsureString coerces an arbitrary decoded JSON value to a string. nil
// becomes the empty string; integral numbers render without a decimal part
// so impression counts never pick up exponents.
func EnsureString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// EnsureInt coerces a value to an integer, falling back to def for anything
// that does not convert. It never panics.
func EnsureInt(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		return def
	default:
		return def
	}
}

// truthy reports whether a decoded JSON value is non-empty in the source
// API's sense: nil, empty strings, zero numbers, false, and empty
// collections all count as empty and make alias lookup fall through.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}
