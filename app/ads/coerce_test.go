package ads

import (
	"testing"
)

func TestEnsureString(t *testing.T) {
	if got := EnsureString(nil); got != "" {
		t.Errorf("Expected empty string for nil, got: %q", got)
	}
	if got := EnsureString("hello"); got != "hello" {
		t.Errorf("Expected pass-through, got: %q", got)
	}
	// JSON decoding hands every number over as float64; integral values must
	// not grow a decimal part or an exponent.
	if got := EnsureString(float64(1000000)); got != "1000000" {
		t.Errorf("Expected '1000000', got: %q", got)
	}
	if got := EnsureString(float64(12.5)); got != "12.5" {
		t.Errorf("Expected '12.5', got: %q", got)
	}
	if got := EnsureString(true); got != "true" {
		t.Errorf("Expected 'true', got: %q", got)
	}
}

func TestEnsureInt(t *testing.T) {
	if got := EnsureInt(nil, 7); got != 7 {
		t.Errorf("Expected default 7 for nil, got: %d", got)
	}
	if got := EnsureInt(float64(42), 0); got != 42 {
		t.Errorf("Expected 42, got: %d", got)
	}
	if got := EnsureInt(float64(3.9), 0); got != 3 {
		t.Errorf("Expected truncation to 3, got: %d", got)
	}
	if got := EnsureInt("12", 0); got != 12 {
		t.Errorf("Expected 12 for digit string, got: %d", got)
	}
	if got := EnsureInt(" 12 ", 0); got != 12 {
		t.Errorf("Expected 12 for padded digit string, got: %d", got)
	}
	if got := EnsureInt("abc", 5); got != 5 {
		t.Errorf("Expected default 5 for garbage string, got: %d", got)
	}
	if got := EnsureInt(true, 0); got != 1 {
		t.Errorf("Expected 1 for true, got: %d", got)
	}
	if got := EnsureInt([]any{}, 9); got != 9 {
		t.Errorf("Expected default 9 for slice, got: %d", got)
	}
}

func TestTruthy(t *testing.T) {
	empties := []any{nil, "", false, float64(0), 0, int64(0), []any{}, map[string]any{}}
	for _, v := range empties {
		if truthy(v) {
			t.Errorf("Expected %#v to be empty", v)
		}
	}

	nonEmpties := []any{"x", true, float64(1), []any{1}, map[string]any{"a": 1}}
	for _, v := range nonEmpties {
		if !truthy(v) {
			t.Errorf("Expected %#v to be non-empty", v)
		}
	}
}
