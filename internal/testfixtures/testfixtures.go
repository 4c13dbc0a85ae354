// Package testfixtures generates randomized value.Value data for exercising
// the engine against shapes that don't fit neatly into a hand-written
// table, using the same fixture generator the teacher uses for its own
// request/session test data.
package testfixtures

import (
	"github.com/brianvoe/gofakeit/v7"

	"github.com/corvidrun/tmplengine/value"
)

// Person returns an Object with the fields a "hi {{.Name}}, you are
// {{.Age}}" style template typically exercises.
func Person(f *gofakeit.Faker) value.Value {
	return value.Object(map[string]value.Value{
		"Name":  value.String(f.Name()),
		"Email": value.String(f.Email()),
		"Age":   value.Int(int64(f.Number(0, 120))),
	})
}

// PersonList returns an Array of n Person Objects, for exercising range.
func PersonList(f *gofakeit.Faker, n int) value.Value {
	items := make([]value.Value, n)
	for i := range items {
		items[i] = Person(f)
	}
	return value.Array(items)
}

// StringMap returns a Map with n randomly-named string entries, for
// exercising range's sorted-key iteration order against unpredictable key
// sets.
func StringMap(f *gofakeit.Faker, n int) value.Value {
	m := make(map[string]value.Value, n)
	for len(m) < n {
		m[f.Word()] = value.String(f.Sentence(3))
	}
	return value.Map(m)
}
