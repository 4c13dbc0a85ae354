package value

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberPrinter renders Number values without locale-specific grouping; the
// engine's canonical textual form must not depend on the host's locale.
var numberPrinter = message.NewPrinter(language.Und)

// String renders the canonical textual form described in spec.md §4.8:
// integers without trailing zeros, booleans as true/false, NoValue via its
// own marker, strings verbatim, and composites recursively.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "<nil>"
	case KindNoValue:
		return "<no value>"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v)
	case KindString:
		return v.s
	case KindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	case KindMap, KindObject:
		parts := make([]string, 0, len(v.m))
		for k, e := range v.m {
			parts = append(parts, k+":"+e.String())
		}
		return "map[" + strings.Join(parts, " ") + "]"
	case KindFunction:
		return "<function>"
	default:
		return ""
	}
}

func formatNumber(v Value) string {
	switch v.numKind {
	case NumInt:
		return numberPrinter.Sprint(number.Decimal(v.i, number.NoSeparator()))
	case NumUint:
		return numberPrinter.Sprint(number.Decimal(v.u, number.NoSeparator()))
	case NumFloat:
		if v.f == float64(int64(v.f)) {
			return strconv.FormatInt(int64(v.f), 10)
		}
		return numberPrinter.Sprint(number.Decimal(v.f, number.NoSeparator()))
	default:
		return ""
	}
}
