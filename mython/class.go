package mython

import "fmt"

// Method is a single named, fixed-arity function defined inside a class
// body. Body is the AST executor node for the method's block — grounded on
// original_source/mython/statement.cpp's MethodBody, which is the sole
// catch-point for a propagating Return signal (spec.md §9's
// "control-flow unwinding" note; see ast_statements.go).
type Method struct {
	Name   string
	Params []string
	Body   Executor
}

func (m *Method) arity() int { return len(m.Params) }

type methodKey struct {
	name  string
	arity int
}

// Class is a single-inheritance class object: a name, an optional parent,
// and a (name, arity)-keyed method table, matching spec.md §3/§4.2's
// description and original_source/mython/runtime.cpp's Class.
type Class struct {
	Name    string
	Parent  *Class
	methods map[methodKey]*Method
}

// NewClass builds an empty class, optionally deriving from parent.
func NewClass(name string, parent *Class) *Class {
	return &Class{Name: name, Parent: parent, methods: make(map[methodKey]*Method)}
}

// AddMethod registers m under its (name, arity) key, shadowing any method
// of the same key inherited from Parent.
func (c *Class) AddMethod(m *Method) {
	c.methods[methodKey{name: m.Name, arity: m.arity()}] = m
}

// GetMethod resolves (name, arity) by walking the class chain from c up
// through Parent, matching runtime.cpp's Class::GetMethod.
func (c *Class) GetMethod(name string, arity int) (*Method, bool) {
	for cls := c; cls != nil; cls = cls.Parent {
		if m, ok := cls.methods[methodKey{name: name, arity: arity}]; ok {
			return m, true
		}
	}
	return nil, false
}

// Print writes the class's printable form, "Class <name>", matching
// runtime.cpp's Class::Print.
func (c *Class) Print(ctx Context) error {
	_, err := fmt.Fprintf(ctx.Stdout(), "Class %s", c.Name)
	return err
}
