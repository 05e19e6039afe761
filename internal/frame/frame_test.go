package frame

import "testing"

func TestAllocSizeAlwaysMultipleOf16(t *testing.T) {
	f := New(0)
	sizes := []int{1, 1, 4, 8, 1, 4, 1, 1, 1, 20, 8, 1}
	for _, s := range sizes {
		f.Alloc(s)
		if f.AllocSize%16 != 0 {
			t.Fatalf("AllocSize %d not a multiple of 16 after alloc(%d)", f.AllocSize, s)
		}
	}
}

func TestDwordReuseFromFreeList(t *testing.T) {
	f := New(0)
	a := f.Alloc(8)
	b := f.Alloc(8)
	if a == b {
		t.Fatalf("expected distinct offsets, got %d twice", a)
	}
	if f.AllocSize != 16 {
		t.Fatalf("expected a single 16-byte growth to serve two dwords, got AllocSize=%d", f.AllocSize)
	}
}

func TestByteAllocsDoNotOverlap(t *testing.T) {
	f := New(0)
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		off := f.Alloc(1)
		if seen[off] {
			t.Fatalf("offset %d reused before being freed", off)
		}
		seen[off] = true
	}
}

func TestMixedSizesNonOverlapping(t *testing.T) {
	f := New(0)
	type slot struct {
		off, width int
	}
	var slots []slot
	for _, w := range []int{1, 4, 8, 1, 8, 4, 1, 1, 12} {
		off := f.Alloc(w)
		slots = append(slots, slot{off, w})
	}
	for i := range slots {
		for j := range slots {
			if i == j {
				continue
			}
			// Offsets are high boundaries: a slot covers (off-width, off].
			a, b := slots[i], slots[j]
			if a.off-a.width < b.off && b.off-b.width < a.off {
				t.Fatalf("slots overlap: %+v and %+v", a, b)
			}
		}
	}
}

func TestBulkAllocRoundsUpTo16(t *testing.T) {
	f := New(0)
	f.Alloc(20)
	if f.AllocSize != 32 {
		t.Fatalf("expected 20 bytes to round up to 32, got %d", f.AllocSize)
	}
}

func TestNestedFrameRecordsInitialSP(t *testing.T) {
	outer := New(0)
	outer.Alloc(8)
	inner := New(outer.AllocSize)
	if inner.InitialSP != outer.AllocSize {
		t.Fatalf("inner.InitialSP = %d, want %d", inner.InitialSP, outer.AllocSize)
	}
}
