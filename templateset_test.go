package tmplengine

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/corvidrun/tmplengine/internal/testfixtures"
	"github.com/corvidrun/tmplengine/value"
)

func TestParseStringRegistersBlockAsDefinePlusTemplate(t *testing.T) {
	ts := NewTreeSet()
	if err := ts.ParseString("root", `before-{{block "foobar" true}}inner:{{.}}{{end}}-after`, nil); err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if _, ok := ts.Lookup("foobar"); !ok {
		t.Fatal(`{{block "foobar" true}} did not register a "foobar" tree`)
	}

	e := New("root", ts, NewFuncMap())
	got, err := e.Render(Empty())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "before-inner:true-after" {
		t.Errorf("got %q, want %q", got, "before-inner:true-after")
	}
}

func TestNamesIncludesEveryRegisteredTree(t *testing.T) {
	ts := NewTreeSet()
	if err := ts.ParseString("root", `{{define "b"}}{{end}}{{define "a"}}{{end}}`, nil); err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	names := ts.Names()
	if len(names) != 3 {
		t.Fatalf("Names() = %v, want 3 entries", names)
	}
}

func TestFieldAccessAndRangeAgainstFakeData(t *testing.T) {
	f := gofakeit.New(1)
	dot := testfixtures.PersonList(f, 3)

	got := render(t, "root", "{{range .}}{{.Name}}: {{.Age}} {{end}}", nil, dot)
	if got == "" {
		t.Fatal("expected non-empty rendering of generated person list")
	}

	names := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		person := mustArrayIndex(t, dot, i)
		name, ok := person.ObjectGet("Name")
		if !ok {
			t.Fatalf("generated person %d missing Name field", i)
		}
		s, _ := name.AsString()
		names[s] = struct{}{}
	}
	for n := range names {
		if !strings.Contains(got, n) {
			t.Errorf("rendered output %q missing generated name %q", got, n)
		}
	}
}

func mustArrayIndex(t *testing.T, v value.Value, i int) value.Value {
	t.Helper()
	items, ok := v.AsArray()
	if !ok || i >= len(items) {
		t.Fatalf("value is not an array with index %d", i)
	}
	return items[i]
}
