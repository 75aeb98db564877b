package bitset

import "testing"

func TestSetGet(t *testing.T) {
	s := New()
	if s.Get(0x1000) {
		t.Fatal("expected unset bit to read false")
	}
	s.Set(0x1000)
	if !s.Get(0x1000) {
		t.Fatal("expected set bit to read true")
	}
	if s.Get(0x1001) {
		t.Fatal("neighbouring bit should be unaffected")
	}
}

func TestSetAllGetAny(t *testing.T) {
	s := New()
	s.SetAll(0xF1900, 0xF19FF)

	if !s.GetAny(0xF1980, 0xF19C0) {
		t.Fatal("expected overlap to be detected")
	}
	if s.GetAny(0xF1A00, 0xF1AFF) {
		t.Fatal("expected disjoint range to report no overlap")
	}
}

func TestBoundary(t *testing.T) {
	s := New()
	s.Set(0x10FFFF)
	if !s.Get(0x10FFFF) {
		t.Fatal("expected top code point to be settable")
	}
}
