package mython

import (
	"strings"
	"testing"
)

func TestValueToStringInstanceWithoutStrIsAddressLikeNotAnError(t *testing.T) {
	ctx := newTestContext()
	class := NewClass("Widget", nil)
	inst := NewClassInstance(class)

	text, err := valueToString(OwnInstance(inst), ctx)
	if err != nil {
		t.Fatalf("printing an instance without __str__ must not error, got: %v", err)
	}
	if !strings.Contains(text, "Widget") {
		t.Fatalf("expected an address-like token naming the class, got %q", text)
	}
}

func TestValueToStringInstanceStrCanReturnNonString(t *testing.T) {
	ctx := newTestContext()
	class := NewClass("Wrapper", nil)
	class.AddMethod(&Method{
		Name: "__str__",
		Body: &MethodBody{Body: &Return{Value: &Literal{Value: OwnNumber(42)}}},
	})
	inst := NewClassInstance(class)

	text, err := valueToString(OwnInstance(inst), ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "42" {
		t.Fatalf("expected __str__'s Number result rendered via its own Print, got %q", text)
	}
}

func TestPrintOfInstanceWithoutStrSucceeds(t *testing.T) {
	class := NewClass("Widget", nil)
	inst := NewClassInstance(class)

	_, _, out, err := runNode(t, &Print{Args: []Executor{&Literal{Value: OwnInstance(inst)}}})
	if err != nil {
		t.Fatalf("unexpected error printing an instance without __str__: %v", err)
	}
	if !strings.Contains(out, "Widget") {
		t.Fatalf("expected output naming the class, got %q", out)
	}
}
