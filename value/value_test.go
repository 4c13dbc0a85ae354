package value

import (
	"strconv"
	"testing"
)

func TestIsTrue(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil", Nil(), false},
		{"no-value", NoValue(), false},
		{"bool-false", Bool(false), false},
		{"bool-true", Bool(true), true},
		{"zero-int", Int(0), false},
		{"nonzero-int", Int(1), true},
		{"zero-float", Float(0), false},
		{"empty-string", String(""), false},
		{"nonempty-string", String("a"), true},
		{"empty-array", Array(nil), false},
		{"nonempty-array", Array([]Value{Int(1)}), true},
		{"empty-map", Map(map[string]Value{}), false},
		{"nonempty-map", Map(map[string]Value{"a": Int(1)}), true},
		{"function", Func(func(args []Value) (Value, error) { return Nil(), nil }), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsTrue(c.v); got != c.want {
				t.Errorf("IsTrue(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestMapVsObjectMissingField(t *testing.T) {
	m := Map(map[string]Value{"foo": Int(1)})
	if got, ok := m.MapGet("foo2"); !ok || !got.IsNoValue() {
		t.Errorf("MapGet on missing key = %v, %v; want NoValue, true", got, ok)
	}

	obj := Object(map[string]Value{"foo": Int(1)})
	if _, found := obj.ObjectGet("foobar"); found {
		t.Errorf("ObjectGet on missing field reported found")
	}
	got, found := obj.ObjectGet("foo")
	if !found {
		t.Fatalf("ObjectGet(%q) not found", "foo")
	}
	if n, _ := got.AsInt64(); n != 1 {
		t.Errorf("ObjectGet(%q) = %v, want 1", "foo", n)
	}
}

func TestStringifyNumbers(t *testing.T) {
	if got := Int(2000).String(); got != "2000" {
		t.Errorf("Int(2000).String() = %q, want %q", got, "2000")
	}
	if got := Uint(7).String(); got != "7" {
		t.Errorf("Uint(7).String() = %q, want %q", got, "7")
	}
	if got := Float(3).String(); got != "3" {
		t.Errorf("Float(3).String() = %q, want %q", got, "3")
	}
}

func TestStringifySentinels(t *testing.T) {
	if got := Nil().String(); got != "<nil>" {
		t.Errorf("Nil().String() = %q", got)
	}
	if got := NoValue().String(); got != "<no value>" {
		t.Errorf("NoValue().String() = %q", got)
	}
	if got := Bool(true).String(); got != "true" {
		t.Errorf("Bool(true).String() = %q", got)
	}
	if got := Bool(false).String(); got != "false" {
		t.Errorf("Bool(false).String() = %q", got)
	}
}

// roundTrip parses a literal the way the template grammar would (number,
// bool, or quoted string) and checks it reproduces an equal Value.
func roundTrip(t *testing.T, v Value) {
	t.Helper()
	text := v.String()
	switch v.Kind() {
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			t.Fatalf("ParseBool(%q): %v", text, err)
		}
		if !Equal(Bool(b), v) {
			t.Errorf("round trip mismatch for %v", v)
		}
	case KindNumber:
		switch v.NumberKind() {
		case NumInt:
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				t.Fatalf("ParseInt(%q): %v", text, err)
			}
			if !Equal(Int(n), v) {
				t.Errorf("round trip mismatch for %v", v)
			}
		}
	case KindString:
		quoted := strconv.Quote(text)
		unquoted, err := strconv.Unquote(quoted)
		if err != nil {
			t.Fatalf("Unquote(%q): %v", quoted, err)
		}
		if !Equal(String(unquoted), v) {
			t.Errorf("round trip mismatch for %v", v)
		}
	}
}

func TestRoundTrips(t *testing.T) {
	roundTrip(t, Bool(true))
	roundTrip(t, Bool(false))
	roundTrip(t, Int(42))
	roundTrip(t, String("hello world"))
}
