package value

// Equal reports whether a and b carry the same kind and payload. Arrays and
// maps/objects compare element-wise; functions are never equal to anything,
// including themselves, since there is no meaningful identity to compare.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil, KindNoValue:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()
		return a.numKind == b.numKind && af == bf
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindMap, KindObject:
		if len(a.m) != len(b.m) {
			return false
		}
		for k, av := range a.m {
			bv, ok := b.m[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case KindFunction:
		return false
	default:
		return false
	}
}
