package testfixtures

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
)

func TestPersonHasExpectedFields(t *testing.T) {
	f := gofakeit.New(1)
	p := Person(f)

	name, ok := p.ObjectGet("Name")
	if !ok {
		t.Fatal("Person: missing Name field")
	}
	if s, _ := name.AsString(); s == "" {
		t.Error("Person: Name is empty")
	}

	age, ok := p.ObjectGet("Age")
	if !ok {
		t.Fatal("Person: missing Age field")
	}
	if n, _ := age.AsInt64(); n < 0 || n > 120 {
		t.Errorf("Person: Age = %d, want in [0, 120]", n)
	}
}

func TestPersonListLength(t *testing.T) {
	f := gofakeit.New(1)
	list := PersonList(f, 5)
	arr, ok := list.AsArray()
	if !ok {
		t.Fatal("PersonList: not an Array")
	}
	if len(arr) != 5 {
		t.Errorf("PersonList: len = %d, want 5", len(arr))
	}
}

func TestStringMapHasRequestedSize(t *testing.T) {
	f := gofakeit.New(1)
	m := StringMap(f, 3)
	keys, ok := m.Keys()
	if !ok {
		t.Fatal("StringMap: not a Map")
	}
	if len(keys) != 3 {
		t.Errorf("StringMap: len = %d, want 3", len(keys))
	}
}
