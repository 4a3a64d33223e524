package mython

// IsTrue reports the boolean-context truthiness of v, matching
// original_source/mython/runtime.cpp's IsTrue: a Bool is itself, a Number
// is true unless it is zero, a String is true unless it is empty, and None
// (or anything else) is false.
func IsTrue(v Value) bool {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number != 0
	case KindString:
		return v.text != ""
	default:
		return false
	}
}

// Equal implements value equality, dispatching to the left operand's
// __eq__ method when it is a ClassInstance, matching runtime.cpp's
// Equal free function (there, a thrown runtime_error; here, a returned
// *RuntimeError).
func Equal(a, b Value, ctx Context) (bool, error) {
	switch {
	case a.kind == KindNone && b.kind == KindNone:
		return true, nil
	case a.kind == KindNumber && b.kind == KindNumber:
		return a.number == b.number, nil
	case a.kind == KindString && b.kind == KindString:
		return a.text == b.text, nil
	case a.kind == KindBool && b.kind == KindBool:
		return a.boolean == b.boolean, nil
	case a.kind == KindInstance:
		result, err := a.instance.Call("__eq__", []Value{b}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	default:
		return false, newTypeError("cannot compare %s and %s for equality", a.TypeName(), b.TypeName())
	}
}

// Less implements ordering, dispatching to a ClassInstance's __lt__ method,
// matching runtime.cpp's Less free function.
func Less(a, b Value, ctx Context) (bool, error) {
	switch {
	case a.kind == KindNumber && b.kind == KindNumber:
		return a.number < b.number, nil
	case a.kind == KindString && b.kind == KindString:
		return a.text < b.text, nil
	case a.kind == KindBool && b.kind == KindBool:
		return !a.boolean && b.boolean, nil
	case a.kind == KindInstance:
		result, err := a.instance.Call("__lt__", []Value{b}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	default:
		return false, newTypeError("cannot compare %s and %s by order", a.TypeName(), b.TypeName())
	}
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are derived from Equal
// and Less, matching runtime.cpp's NotEqual/Greater/LessOrEqual/GreaterOrEqual
// free functions. Greater is deliberately ¬Less(a,b) ∧ ¬Equal(a,b), not
// Less(b,a): for ClassInstance operands, Less(b,a) would dispatch __lt__ on
// b instead of a and never consult __eq__, calling the wrong receiver's
// dunder method for `a > b`.
func NotEqual(a, b Value, ctx Context) (bool, error) {
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func Greater(a, b Value, ctx Context) (bool, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

func LessOrEqual(a, b Value, ctx Context) (bool, error) {
	gt, err := Greater(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(a, b Value, ctx Context) (bool, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
