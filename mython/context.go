package mython

import "io"

// Context is the single capability the executor is given: a place to write
// output. It carries no input surface and no filesystem, network, or clock
// access, matching spec.md §6's external-interface list exactly.
type Context interface {
	Stdout() io.Writer
}

// WriterContext is the default Context, backing Stdout with any io.Writer —
// typically an *os.File in a real embedding, or a *bytes.Buffer in tests.
type WriterContext struct {
	w io.Writer
}

// NewContext wraps w as a Context.
func NewContext(w io.Writer) *WriterContext {
	return &WriterContext{w: w}
}

func (c *WriterContext) Stdout() io.Writer { return c.w }
