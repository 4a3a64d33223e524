package mython

// ValueKind tags the dynamic type carried by a Value handle.
type ValueKind int

const (
	KindNone ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

// Value is the runtime's value handle, matching spec.md §3's description of
// a small tagged union over Number/String/Bool/None/Class/ClassInstance. Go's
// garbage collector removes the need for the C++ reference's owning vs.
// non-owning shared_ptr distinction — see SPEC_FULL.md §4.2's resolved open
// question on handle ownership.
type Value struct {
	kind     ValueKind
	number   int64
	text     string
	boolean  bool
	class    *Class
	instance *ClassInstance
}

// OwnNumber, OwnString, OwnBool, OwnClass, and OwnInstance build a freshly
// owned handle around a value of the matching kind. ShareInstance is kept as
// a distinct name — spec.md §6's Own/Share/None vocabulary — even though, in
// Go, sharing an instance handle and owning one have the same representation
// (a pointer copy): see SPEC_FULL.md §4.2.
func OwnNumber(n int64) Value { return Value{kind: KindNumber, number: n} }
func OwnString(s string) Value { return Value{kind: KindString, text: s} }
func OwnBool(b bool) Value { return Value{kind: KindBool, boolean: b} }
func OwnClass(c *Class) Value { return Value{kind: KindClass, class: c} }

func OwnInstance(i *ClassInstance) Value { return Value{kind: KindInstance, instance: i} }
func ShareInstance(i *ClassInstance) Value { return OwnInstance(i) }

// None returns the empty handle, the value of an uninitialized variable and
// the default return of a method whose body never executes a Return.
func None() Value { return Value{kind: KindNone} }
