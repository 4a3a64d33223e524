package mython

import "fmt"

// Assignment binds Var to the value of RHS in the current closure and
// evaluates to that same value, matching statement.cpp's Assignment::Execute.
type Assignment struct {
	Var string
	RHS Executor
}

func (n *Assignment) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	val, _, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return None(), false, err
	}
	closure.Set(n.Var, val)
	return val, false, nil
}

// FieldAssignment evaluates Object, requires it to be a ClassInstance, and
// assigns RHS's value to its Field. Matches statement.cpp's
// FieldAssignment::Execute.
type FieldAssignment struct {
	Object Executor
	Field  string
	RHS    Executor
}

func (n *FieldAssignment) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	objVal, _, err := n.Object.Execute(closure, ctx)
	if err != nil {
		return None(), false, err
	}
	inst, ok := objVal.Instance()
	if !ok {
		return None(), false, newTypeError("cannot assign field %q on %s", n.Field, objVal.TypeName())
	}
	val, _, err := n.RHS.Execute(closure, ctx)
	if err != nil {
		return None(), false, err
	}
	inst.SetField(n.Field, val)
	return val, false, nil
}

// Print evaluates each of Args in order and writes their printed forms
// space-separated, followed by a single newline, matching statement.cpp's
// Print::Execute (a Print with zero Args still writes the trailing newline).
type Print struct {
	Args []Executor
}

func (n *Print) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	for i, arg := range n.Args {
		val, _, err := arg.Execute(closure, ctx)
		if err != nil {
			return None(), false, err
		}
		text, err := valueToString(val, ctx)
		if err != nil {
			return None(), false, err
		}
		if i > 0 {
			if _, err := fmt.Fprint(ctx.Stdout(), " "); err != nil {
				return None(), false, err
			}
		}
		if _, err := fmt.Fprint(ctx.Stdout(), text); err != nil {
			return None(), false, err
		}
	}
	if _, err := fmt.Fprint(ctx.Stdout(), "\n"); err != nil {
		return None(), false, err
	}
	return None(), false, nil
}

// Compound runs Statements in order, stopping early the moment one of them
// propagates a Return signal or an error — matching statement.cpp's
// Compound::Execute and the same "stop on first non-(false,nil)" shape the
// teacher uses in execution_control.go's evalStatements.
type Compound struct {
	Statements []Executor
}

func (n *Compound) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	for _, stmt := range n.Statements {
		val, returned, err := stmt.Execute(closure, ctx)
		if err != nil {
			return None(), false, err
		}
		if returned {
			return val, true, nil
		}
	}
	return None(), false, nil
}

// Return evaluates Value and propagates it with the return signal set,
// matching statement.cpp's Return::Execute (there, a thrown ObjectHolder
// carries the value up to the enclosing MethodBody's catch; here, the same
// shape the rest of this package already uses for control flow).
type Return struct {
	Value Executor
}

func (n *Return) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	val, _, err := n.Value.Execute(closure, ctx)
	if err != nil {
		return None(), false, err
	}
	return val, true, nil
}

// MethodBody is the sole point that collapses a propagating Return signal
// back into a plain value: it runs Body and, whether or not a Return fired
// inside it, always reports false here — matching statement.cpp's
// MethodBody::Execute (there, a try/catch around the thrown ObjectHolder).
// A method whose body never returns evaluates to None.
type MethodBody struct {
	Body Executor
}

func (n *MethodBody) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	val, returned, err := n.Body.Execute(closure, ctx)
	if err != nil {
		return None(), false, err
	}
	if returned {
		return val, false, nil
	}
	return None(), false, nil
}

// IfElse evaluates Condition and runs Then if it is truthy, Else otherwise
// (Else may be nil, in which case a false Condition evaluates to None).
// Matches statement.cpp's IfElse::Execute.
type IfElse struct {
	Condition Executor
	Then      Executor
	Else      Executor
}

func (n *IfElse) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	cond, _, err := n.Condition.Execute(closure, ctx)
	if err != nil {
		return None(), false, err
	}
	if IsTrue(cond) {
		return n.Then.Execute(closure, ctx)
	}
	if n.Else != nil {
		return n.Else.Execute(closure, ctx)
	}
	return None(), false, nil
}

// ClassDefinition builds a Class value from Methods (and Parent, resolved
// by name from the enclosing closure) and binds it to Name — classes are
// first-class values here, exactly as spec.md §3 describes. Matches
// statement.cpp's ClassDefinition::Execute.
type ClassDefinition struct {
	Name       string
	ParentName string
	Methods    []*Method
}

func (n *ClassDefinition) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	var parent *Class
	if n.ParentName != "" {
		parentVal, ok := closure.Get(n.ParentName)
		if !ok {
			return None(), false, newNameError("name %q is not defined", n.ParentName)
		}
		parent, ok = parentVal.Class()
		if !ok {
			return None(), false, newTypeError("%q is not a class", n.ParentName)
		}
	}

	class := NewClass(n.Name, parent)
	for _, m := range n.Methods {
		class.AddMethod(m)
	}
	classVal := OwnClass(class)
	closure.Set(n.Name, classVal)
	return classVal, false, nil
}
