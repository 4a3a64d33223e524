package mython

// Executor is implemented by every AST node. Execute returns the node's
// value, whether a Return signal is propagating out of it, and an error —
// the (Value, bool, error) triple spec.md §7/§9 calls for, already the
// exact shape the teacher threads through execution_control.go's
// evalStatements/evalForStatement/evalWhileStatement for break/next
// propagation. Compound and IfElse forward a true return-signal from the
// statements they run, and every node forwards an error unchanged; only
// MethodBody collapses the signal back into a plain value, matching
// spec.md §9's "control-flow unwinding" note. The expression nodes, Print,
// Assignment, and FieldAssignment do not forward it: they discard their
// operands' return flag and always report false.
type Executor interface {
	Execute(closure *Closure, ctx Context) (Value, bool, error)
}

// Literal wraps a constant Value as a leaf node. No parser exists in this
// module (spec.md §1 excludes surface syntax from scope), so every
// executable tree — production and test alike — is built by hand from
// these constructors; Literal is the scaffolding that lets a hand-built
// tree embed a constant, the same way original_source's own unit tests
// build ObjectHolders inline.
type Literal struct {
	Value Value
}

func (n *Literal) Execute(closure *Closure, ctx Context) (Value, bool, error) {
	return n.Value, false, nil
}
