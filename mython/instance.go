package mython

import "fmt"

// ClassInstance is a live object: a reference to its Class and its own
// field table. Grounded on original_source/mython/runtime.cpp's
// ClassInstance.
type ClassInstance struct {
	Class  *Class
	Fields map[string]Value
}

// NewClassInstance allocates a fresh instance with an empty field table.
// spec.md §9 requires this be called fresh on every NewInstance.Execute —
// the C++ reference's bug of caching one instance on the AST node itself is
// the mandatory fix named in SPEC_FULL.md §4.3, not something to preserve.
func NewClassInstance(class *Class) *ClassInstance {
	return &ClassInstance{Class: class, Fields: make(map[string]Value)}
}

// Field reads a field, reporting whether it has been assigned.
func (inst *ClassInstance) Field(name string) (Value, bool) {
	v, ok := inst.Fields[name]
	return v, ok
}

// SetField assigns a field, creating it if absent.
func (inst *ClassInstance) SetField(name string, v Value) {
	inst.Fields[name] = v
}

// HasMethod reports whether (name, arity) resolves on inst's class chain.
func (inst *ClassInstance) HasMethod(name string, arity int) bool {
	_, ok := inst.Class.GetMethod(name, arity)
	return ok
}

// Call resolves (name, len(args)) on inst's class chain, binds a fresh
// Closure with "self" and the positional parameters, and runs the method
// body. Matches runtime.cpp's ClassInstance::Call.
func (inst *ClassInstance) Call(name string, args []Value, ctx Context) (Value, error) {
	method, ok := inst.Class.GetMethod(name, len(args))
	if !ok {
		return None(), newMethodError("%s has no method %q taking %d argument(s)", inst.Class.Name, name, len(args))
	}

	frame := NewClosure()
	frame.Set("self", ShareInstance(inst))
	for i, param := range method.Params {
		frame.Set(param, args[i])
	}

	value, _, err := method.Body.Execute(frame, ctx)
	return value, err
}

// Print writes inst's printable form: its __str__ method's result if one is
// defined (arity 0), matching runtime.cpp's ClassInstance::Print which
// delegates to __str__ when present.
func (inst *ClassInstance) Print(ctx Context) error {
	text, err := valueToString(ShareInstance(inst), ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(ctx.Stdout(), text)
	return err
}
