package tmplengine

import (
	"errors"
	"strings"
	"testing"
)

func TestIOErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := IOError{Cause: cause}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(IOError{...}, cause) = false, want true")
	}
}

func TestFunctionCallFailedErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := FunctionCallFailedError{Name: "f", Cause: cause}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(FunctionCallFailedError{...}, cause) = false, want true")
	}
}

func TestErrorMessagesNameTheOffendingIdentifier(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{IncompleteTemplateError{Name: "home"}, "home"},
		{TemplateNotDefinedError{Name: "partial"}, "partial"},
		{UndefinedFunctionError{Name: "frobnicate"}, "frobnicate"},
		{VariableNotFoundError{Name: "x"}, "x"},
	}
	for _, c := range cases {
		if got := c.err.Error(); !strings.Contains(got, c.want) {
			t.Errorf("%T.Error() = %q, want it to contain %q", c.err, got, c.want)
		}
	}
}
