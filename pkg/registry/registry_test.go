package registry

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterFlattensProps(t *testing.T) {
	reg := NewInMemory()

	base, err := reg.Register("a-entity", TypeDescriptor{
		Props: Props{
			"visible": {Value: true, Writable: true},
			"scale":   {Value: 1.0, Writable: true},
		},
	})
	if err != nil {
		t.Fatalf("Register(a-entity) error: %v", err)
	}

	derived, err := reg.Register("a-box", TypeDescriptor{
		Extends: base,
		Props: Props{
			"scale": {Value: 2.0, Writable: false},
			"depth": {Value: 1.0, Writable: true},
		},
	})
	if err != nil {
		t.Fatalf("Register(a-box) error: %v", err)
	}

	if d, ok := derived.Prop("visible"); !ok || d.Value != true {
		t.Errorf("inherited prop visible = (%v, %v), want (true, true)", d.Value, ok)
	}
	if d, _ := derived.Prop("scale"); d.Value != 2.0 || d.Writable {
		t.Errorf("own prop should override inherited: got %+v", d)
	}
	if _, ok := derived.Prop("depth"); !ok {
		t.Error("own prop depth missing")
	}

	// Flattening must not leak back into the base type.
	if _, ok := base.Prop("depth"); ok {
		t.Error("base type gained a derived prop")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	reg := NewInMemory()
	if _, err := reg.Register("a-box", TypeDescriptor{}); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	_, err := reg.Register("a-box", TypeDescriptor{})
	if !errors.Is(err, ErrDuplicateType) {
		t.Errorf("second Register error = %v, want ErrDuplicateType", err)
	}
}

func TestRegisterEmptyName(t *testing.T) {
	reg := NewInMemory()
	if _, err := reg.Register("", TypeDescriptor{}); err == nil {
		t.Error("expected error for empty type name")
	}
}

func TestLookup(t *testing.T) {
	reg := NewInMemory()
	want, _ := reg.Register("a-box", TypeDescriptor{})

	got, ok := reg.Lookup("a-box")
	if !ok || got != want {
		t.Errorf("Lookup(a-box) = (%v, %v), want the registered type", got, ok)
	}
	if _, ok := reg.Lookup("a-missing"); ok {
		t.Error("Lookup of unknown name reported ok")
	}
}

func TestDerivesFrom(t *testing.T) {
	reg := NewInMemory()
	grand, _ := reg.Register("a-entity", TypeDescriptor{})
	parent, _ := reg.Register("a-shape", TypeDescriptor{Extends: grand})
	child, _ := reg.Register("a-box", TypeDescriptor{Extends: parent})

	if !child.DerivesFrom(parent) {
		t.Error("child should derive from parent")
	}
	if !child.DerivesFrom(grand) {
		t.Error("child should derive from grandparent")
	}
	if parent.DerivesFrom(child) {
		t.Error("derivation is not symmetric")
	}
	if grand.DerivesFrom(grand) {
		t.Error("a type does not derive from itself")
	}
}

func TestRegistrationMetrics(t *testing.T) {
	promReg := prometheus.NewRegistry()
	reg := NewInMemory(WithRegisterer(promReg), WithNamespace("testns"))

	if _, err := reg.Register("a-box", TypeDescriptor{}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if _, err := reg.Register("a-sphere", TypeDescriptor{}); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	// A failed registration must not count.
	if _, err := reg.Register("a-box", TypeDescriptor{}); err == nil {
		t.Fatal("expected duplicate error")
	}

	if got := testutil.ToFloat64(reg.registrations); got != 2 {
		t.Errorf("registrations_total = %v, want 2", got)
	}
}
