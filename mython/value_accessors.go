package mython

// Kind reports v's dynamic type tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNone reports whether v is the empty handle.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Number returns v's payload and true if v holds a Number.
func (v Value) Number() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.number, true
}

// Text returns v's payload and true if v holds a String.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// Bool returns v's payload and true if v holds a Bool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolean, true
}

// Class returns v's payload and true if v holds a Class.
func (v Value) Class() (*Class, bool) {
	if v.kind != KindClass {
		return nil, false
	}
	return v.class, true
}

// Instance returns v's payload and true if v holds a ClassInstance.
func (v Value) Instance() (*ClassInstance, bool) {
	if v.kind != KindInstance {
		return nil, false
	}
	return v.instance, true
}

// TypeName names v's dynamic type for error messages, matching the
// reference's error text conventions ("Number", "String", ...).
func (v Value) TypeName() string {
	switch v.kind {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindClass:
		return "Class"
	case KindInstance:
		return v.instance.Class.Name
	default:
		return "Unknown"
	}
}
