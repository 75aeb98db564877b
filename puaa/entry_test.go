package puaa

import "testing"

func TestSingleEntryExtend(t *testing.T) {
	e := NewSingleEntry(0x41, 0x41, "Letter")
	if !e.extend(0x42, "Letter") {
		t.Fatal("expected matching value to extend")
	}
	if e.LastCodePoint() != 0x42 {
		t.Fatalf("got last=%#x, want 0x42", e.LastCodePoint())
	}
	if e.extend(0x43, "Digit") {
		t.Fatal("expected mismatched value to reject extend")
	}
}

func TestMultipleEntryPropertyValue(t *testing.T) {
	e := NewMultipleEntry(0x100, 0x102, []string{"a", "b", "c"})
	for cp, want := range map[int]string{0x100: "a", 0x101: "b", 0x102: "c"} {
		got, ok := e.PropertyValue(cp)
		if !ok || got != want {
			t.Errorf("PropertyValue(%#x) = %q, %v; want %q, true", cp, got, ok, want)
		}
	}
}

func TestBooleanEntryPropertyValue(t *testing.T) {
	y := NewBooleanEntry(0, 0, true)
	if v, _ := y.PropertyValue(0); v != "Y" {
		t.Errorf("got %q, want Y", v)
	}
	n := NewBooleanEntry(0, 0, false)
	if v, _ := n.PropertyValue(0); v != "N" {
		t.Errorf("got %q, want N", v)
	}
}

func TestHexadecimalEntryFormat(t *testing.T) {
	e := NewHexadecimalEntry(0, 0, 0xAB)
	if v, _ := e.PropertyValue(0); v != "00AB" {
		t.Errorf("got %q, want 00AB", v)
	}
}

func TestHexSequenceEntryFormat(t *testing.T) {
	e := NewHexSequenceEntry(0, 1, []uint32{0x41, 0x301})
	v, _ := e.PropertyValue(0)
	if v != "0041 0301" {
		t.Errorf("got %q, want %q", v, "0041 0301")
	}
	v2, _ := e.PropertyValue(1)
	if v2 != v {
		t.Error("HexSequence value should be independent of cp within its range")
	}
	if e.extend(2, []uint32{0x41}) {
		t.Fatal("expected mismatched sequence to reject extend")
	}
	if !e.extend(2, []uint32{0x41, 0x301}) {
		t.Fatal("expected identical sequence to extend")
	}
}

func TestCaseMappingEntryFormat(t *testing.T) {
	withCond := NewCaseMappingEntry(0x130, 0x130, []uint32{0x69, 0x307}, "tr")
	v, _ := withCond.PropertyValue(0x130)
	if v != "0069 0307; tr" {
		t.Errorf("got %q, want %q", v, "0069 0307; tr")
	}
	if withCond.extend(0x131, []uint32{0x69}) {
		t.Fatal("CaseMappingEntry must never extend")
	}

	noCond := NewCaseMappingEntry(0xDF, 0xDF, []uint32{0x73, 0x73}, "")
	v2, _ := noCond.PropertyValue(0xDF)
	if v2 != "0073 0073" {
		t.Errorf("got %q, want %q", v2, "0073 0073")
	}
}

func TestNameAliasEntryFormat(t *testing.T) {
	e := NewNameAliasEntry(0, 0, "NULL", "control")
	v, _ := e.PropertyValue(0)
	if v != "NULL;control" {
		t.Errorf("got %q, want NULL;control", v)
	}
	if e.extend(1, "anything") {
		t.Fatal("NameAliasEntry must never extend")
	}
}

func TestEntryCrossPlaneBoundaryNeverExtends(t *testing.T) {
	e := NewSingleEntry(0xFFFE, 0xFFFF, "X")
	if appendToEntry(e, 0x10000, "X") {
		t.Fatal("extending across a plane boundary must fail even with a matching value")
	}
}
