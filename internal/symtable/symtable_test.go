package symtable

import "testing"

func TestGlobalScopeSurvives(t *testing.T) {
	st := New()
	if st.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", st.Depth())
	}
}

func TestEnterLeaveBalanced(t *testing.T) {
	st := New()
	st.Enter()
	st.Enter()
	if st.Depth() != 3 {
		t.Fatalf("Depth() = %d, want 3", st.Depth())
	}
	st.Leave()
	st.Leave()
	if st.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 after leaving nested scopes", st.Depth())
	}
}

func TestShadowingResolvesInnermostFirst(t *testing.T) {
	st := New()
	st.Declare(&Symbol{Name: "x", Base: Int, Global: true})
	st.Enter()
	st.Declare(&Symbol{Name: "x", Base: Char})
	sym, ok := st.Lookup("x")
	if !ok {
		t.Fatal("expected to find x")
	}
	if sym.Base != Char {
		t.Fatalf("expected inner char x to shadow outer int x, got %v", sym.Base)
	}
	st.Leave()
	sym, ok = st.Lookup("x")
	if !ok || sym.Base != Int {
		t.Fatalf("expected outer int x to resolve after leaving inner scope, got %+v ok=%v", sym, ok)
	}
}

func TestFrameSurvivesScopeExit(t *testing.T) {
	st := New()
	st.Enter()
	sym := &Symbol{Name: "n", Base: Int}
	sym.Offset = st.Alloc(sym.MemorySize())
	st.Declare(sym)
	st.Leave()
	// The declaring scope is gone, but the frame arena entry it points at
	// must still resolve.
	f := st.Frame(sym)
	if f.AllocSize < sym.MemorySize() {
		t.Fatalf("frame AllocSize %d smaller than the symbol it allocated", f.AllocSize)
	}
}

func TestNestedFrameInitialSP(t *testing.T) {
	st := New()
	st.Alloc(8) // grow the global frame before nesting
	st.Enter()
	if st.CurrentFrame().InitialSP != 16 {
		t.Fatalf("nested frame InitialSP = %d, want 16", st.CurrentFrame().InitialSP)
	}
}

func TestMemorySizeRounding(t *testing.T) {
	cases := []struct {
		sym  Symbol
		want int
	}{
		{Symbol{Base: Bool}, 1},
		{Symbol{Base: Char}, 1},
		{Symbol{Base: Int}, 4},
		{Symbol{Base: Char, PointerDepth: 1}, 8},
		{Symbol{Base: Char, IsArray: true, ArrayLen: 5}, 8},
		{Symbol{Base: Int, IsArray: true, ArrayLen: 3}, 12},
	}
	for _, c := range cases {
		if got := c.sym.MemorySize(); got != c.want {
			t.Errorf("MemorySize(%+v) = %d, want %d", c.sym, got, c.want)
		}
	}
}
