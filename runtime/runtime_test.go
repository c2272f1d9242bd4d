package runtime

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymbol(t *testing.T) {
	symtab := NewSymbolTable()
	sym, _ := symtab.DefineTag("new-sym")
	if sym == nil {
		t.Fatal("no symbol created for table")
	}
	if sym.Value != (Nil{}) {
		t.Errorf("expected new symbol to hold nil, holds %v", sym.Value)
	}
	if s := symtab.ResolveTag("new-sym"); s != sym {
		t.Error("cannot find stored symbol in table")
	}
	if _, old := symtab.DefineTag("new-sym"); old != sym {
		t.Error("symbol should have been replaced")
	}
	if sym, _ := symtab.DefineTag(""); sym != nil {
		t.Error("symbols with empty names should be rejected")
	}
}

func TestSymbolTableOrder(t *testing.T) {
	symtab := NewSymbolTable()
	for _, name := range []string{"c", "a", "b"} {
		symtab.DefineTag(name)
	}
	var names string
	symtab.Each(func(name string, _ *Tag) {
		names += name
	})
	if names != "abc" {
		t.Errorf("expected tags in alphabetical order, have %q", names)
	}
}

func TestFrameScoping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.runtime")
	defer teardown()
	//
	mfst := NewMemoryFrameStack()
	mfst.Define("x", Number(1))
	mfst.PushNewMemoryFrame("block")
	mfst.Define("x", Number(2))
	if v, _ := mfst.Get("x"); v != Number(2) {
		t.Errorf("expected inner x to shadow outer x, have %v", v)
	}
	if !mfst.Assign("x", Number(3)) {
		t.Error("expected assignment to x to succeed")
	}
	if _, err := mfst.PopMemoryFrame(); err != nil {
		t.Fatal(err)
	}
	if v, _ := mfst.Get("x"); v != Number(1) {
		t.Errorf("expected outer x to be unchanged, is %v", v)
	}
	if mfst.Assign("y", Number(1)) {
		t.Error("assignment to undefined y should fail")
	}
	if _, found := mfst.Get("y"); found {
		t.Error("assignment must not define y")
	}
}

func TestAssignOuterFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.runtime")
	defer teardown()
	//
	mfst := NewMemoryFrameStack()
	mfst.Define("x", Number(1))
	mfst.PushNewMemoryFrame("call")
	mfst.Assign("x", String("outer"))
	if mfst.Current().SymbolTable.Size() != 0 {
		t.Error("assignment must not define x in the current frame")
	}
	mfst.PopMemoryFrame()
	if v, _ := mfst.Get("x"); v != String("outer") {
		t.Errorf("expected x = outer, is %v", v)
	}
}

func TestPopGlobalFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.runtime")
	defer teardown()
	//
	mfst := NewMemoryFrameStack()
	mfst.PushNewMemoryFrame("f")
	if mfst.Depth() != 2 {
		t.Errorf("expected stack depth of 2, is %d", mfst.Depth())
	}
	if _, err := mfst.PopMemoryFrame(); err != nil {
		t.Error(err)
	}
	if _, err := mfst.PopMemoryFrame(); !errors.Is(err, ErrPopGlobalFrame) {
		t.Errorf("expected global frame not to be popped, error is %v", err)
	}
	if mfst.Current() != mfst.Globals() {
		t.Error("expected global frame to be TOS")
	}
}

func TestTruthiness(t *testing.T) {
	inputs := []struct {
		v      Value
		truthy bool
	}{
		{Nil{}, false}, {Bool(false), false}, {Bool(true), true},
		{Number(0), false}, {Number(-1), true},
		{String(""), false}, {String("0"), true},
		{&Function{Name: "f"}, true}, {NewClass("C", nil, nil), true},
	}
	for _, in := range inputs {
		if Truthy(in.v) != in.truthy {
			t.Errorf("expected truthiness of %v to be %v", in.v, in.truthy)
		}
	}
}

func TestToNumber(t *testing.T) {
	inputs := []struct {
		v  Value
		n  Number
		ok bool
	}{
		{Number(2.5), 2.5, true}, {Bool(true), 1, true}, {Bool(false), 0, true},
		{String("42"), 42, true}, {String("4x"), 0, false}, {Nil{}, 0, false},
	}
	for _, in := range inputs {
		n, ok := ToNumber(in.v)
		if n != in.n || ok != in.ok {
			t.Errorf("expected %v to convert to (%v, %v), is (%v, %v)", in.v, in.n, in.ok, n, ok)
		}
	}
}

func TestEquality(t *testing.T) {
	heap := NewHeap()
	c := NewClass("C", nil, nil)
	i1, i2 := heap.New(c), heap.New(c)
	inputs := []struct {
		a, b  Value
		equal bool
	}{
		{Nil{}, Nil{}, true},
		{Nil{}, Bool(false), false},
		{Number(1), Bool(true), false},
		{String("1"), Number(1), false},
		{String("a"), String("a"), true},
		{i1, i1, true},
		{i1, i2, false},
		{c, c, true},
		{c, NewClass("C", nil, nil), false},
	}
	for _, in := range inputs {
		if Equal(in.a, in.b) != in.equal {
			t.Errorf("expected %v == %v to be %v", in.a, in.b, in.equal)
		}
	}
}

func TestRendering(t *testing.T) {
	c := NewClass("Point", nil, nil)
	inputs := []struct {
		v Value
		s string
	}{
		{Bool(true), "true"}, {Number(3), "3"}, {Number(0.5), "0.5"},
		{String("raw"), "raw"}, {Nil{}, "nil"}, {&Function{Name: "f"}, "native function"},
		{c, "Point"}, {NewHeap().New(c), "Point instance"},
	}
	for _, in := range inputs {
		if in.v.String() != in.s {
			t.Errorf("expected %v to render as %q, is %q", in.v, in.s, in.v.String())
		}
	}
}

func TestMethodLookupAndBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.runtime")
	defer teardown()
	//
	base := NewClass("Base", nil, []*Function{{Name: "m"}, {Name: "n"}})
	derived := NewClass("Derived", base, []*Function{{Name: "m"}})
	m, found := derived.FindMethod("m")
	if !found || m.Owner != derived {
		t.Errorf("expected m to be found in Derived, is %v", m)
	}
	n, found := derived.FindMethod("n")
	if !found || n.Owner != base {
		t.Errorf("expected n to be inherited from Base")
	}
	if _, found = derived.FindMethod("x"); found {
		t.Error("did not expect to find method x")
	}
	heap := NewHeap()
	a, b := heap.New(derived), heap.New(derived)
	ma, mb := m.Bind(a), m.Bind(b)
	if ma.This != a.ID || mb.This != b.ID || m.IsBound() {
		t.Error("bound methods must not share their instance binding")
	}
	if Equal(ma, mb) || !Equal(ma, m.Bind(a)) {
		t.Error("bound methods should be equal if bound to the same instance")
	}
	if names := base.MethodNames(); len(names) != 2 || names[0] != "m" {
		t.Errorf("unexpected method names %v", names)
	}
}

func TestHeapFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rotten.runtime")
	defer teardown()
	//
	heap := NewHeap()
	inst := heap.New(NewClass("C", nil, nil))
	if inst.ID != 1 {
		t.Errorf("expected first instance to have id 1, has %d", inst.ID)
	}
	if _, found := heap.Field(inst, "x"); found {
		t.Error("new instance should not have fields")
	}
	if err := heap.SetField(inst, "x", Number(5)); err != nil {
		t.Fatal(err)
	}
	if v, _ := heap.Field(inst, "x"); v != Number(5) {
		t.Errorf("expected field x = 5, is %v", v)
	}
	if ref, err := heap.Ref(inst.ID); err != nil || ref != inst {
		t.Errorf("cannot re-obtain instance reference: %v", err)
	}
	if _, err := heap.Ref(NoInstance); err == nil {
		t.Error("expected error for reference to no instance")
	}
}
