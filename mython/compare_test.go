package mython

import (
	"bytes"
	"testing"
)

func newTestContext() Context {
	return NewContext(&bytes.Buffer{})
}

func TestIsTrue(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"none", None(), false},
		{"zero", OwnNumber(0), false},
		{"nonzero", OwnNumber(-1), true},
		{"empty string", OwnString(""), false},
		{"nonempty string", OwnString("a"), true},
		{"false", OwnBool(false), false},
		{"true", OwnBool(true), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsTrue(c.v); got != c.want {
				t.Fatalf("IsTrue(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func TestEqualAcrossKinds(t *testing.T) {
	ctx := newTestContext()

	eq, err := Equal(OwnNumber(3), OwnNumber(3), ctx)
	if err != nil || !eq {
		t.Fatalf("3 == 3: got (%v, %v)", eq, err)
	}

	eq, err = Equal(OwnString("a"), OwnString("b"), ctx)
	if err != nil || eq {
		t.Fatalf(`"a" == "b": got (%v, %v)`, eq, err)
	}

	if _, err := Equal(OwnNumber(1), OwnString("1"), ctx); err == nil {
		t.Fatalf("expected a TypeError comparing Number to String")
	}
}

func TestLessAndDerived(t *testing.T) {
	ctx := newTestContext()

	lt, err := Less(OwnNumber(1), OwnNumber(2), ctx)
	if err != nil || !lt {
		t.Fatalf("1 < 2: got (%v, %v)", lt, err)
	}

	gt, err := Greater(OwnNumber(3), OwnNumber(2), ctx)
	if err != nil || !gt {
		t.Fatalf("3 > 2: got (%v, %v)", gt, err)
	}

	le, err := LessOrEqual(OwnNumber(2), OwnNumber(2), ctx)
	if err != nil || !le {
		t.Fatalf("2 <= 2: got (%v, %v)", le, err)
	}

	ge, err := GreaterOrEqual(OwnNumber(1), OwnNumber(2), ctx)
	if err != nil || ge {
		t.Fatalf("1 >= 2: got (%v, %v)", ge, err)
	}
}

func TestGreaterDispatchesLtAndEqOnTheLeftOperand(t *testing.T) {
	ctx := newTestContext()

	// A defines __lt__ and __eq__, both always reporting false. B defines
	// neither. Greater(a, b) must call a's dunders, not b's — if it called
	// Less(b, a) (dispatching on the right operand instead), this would
	// error because B has no __lt__.
	classA := NewClass("A", nil)
	classA.AddMethod(&Method{
		Name:   "__lt__",
		Params: []string{"other"},
		Body:   &MethodBody{Body: &Return{Value: &Literal{Value: OwnBool(false)}}},
	})
	classA.AddMethod(&Method{
		Name:   "__eq__",
		Params: []string{"other"},
		Body:   &MethodBody{Body: &Return{Value: &Literal{Value: OwnBool(false)}}},
	})
	classB := NewClass("B", nil)

	instA := NewClassInstance(classA)
	instB := NewClassInstance(classB)

	gt, err := Greater(OwnInstance(instA), OwnInstance(instB), ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gt {
		t.Fatalf("expected Greater to be true when __lt__ and __eq__ both report false")
	}
}

func TestEqualDispatchesToDunderOnInstances(t *testing.T) {
	ctx := newTestContext()
	class := NewClass("Point", nil)
	class.AddMethod(&Method{
		Name: "__eq__",
		Params: []string{"other"},
		Body: &MethodBody{Body: &Return{Value: &Literal{Value: OwnBool(true)}}},
	})
	inst := NewClassInstance(class)
	other := NewClassInstance(class)

	eq, err := Equal(OwnInstance(inst), OwnInstance(other), ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !eq {
		t.Fatalf("expected __eq__ dispatch to report equal")
	}
}
