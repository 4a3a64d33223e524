package mython

import (
	"fmt"
	"strconv"
)

// valueToString renders v the way this language prints it: a Bool as
// "True"/"False" (matching original_source/mython/runtime.cpp's Bool::Print,
// not Go's lowercase spelling), a None as "None", a Class as "Class <name>",
// and a ClassInstance by calling its __str__ method, if one is defined.
// Shared by Print, Stringify, and ClassInstance.Print so the three surfaces
// never disagree.
func valueToString(v Value, ctx Context) (string, error) {
	switch v.kind {
	case KindNone:
		return "None", nil
	case KindNumber:
		return strconv.FormatInt(v.number, 10), nil
	case KindString:
		return v.text, nil
	case KindBool:
		if v.boolean {
			return "True", nil
		}
		return "False", nil
	case KindClass:
		return "Class " + v.class.Name, nil
	case KindInstance:
		if !v.instance.HasMethod("__str__", 0) {
			// No __str__: an unspecified, address-like identifier, matching
			// runtime.cpp's ClassInstance::Print default (not an error —
			// printing an instance without __str__ is valid).
			return fmt.Sprintf("<%s instance at %p>", v.instance.Class.Name, v.instance), nil
		}
		result, err := v.instance.Call("__str__", nil, ctx)
		if err != nil {
			return "", err
		}
		// __str__ may return any value, printed using its own rendering —
		// not required to be a String.
		return valueToString(result, ctx)
	default:
		return "", newTypeError("value of unknown kind cannot be printed")
	}
}
