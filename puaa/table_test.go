package puaa

import "testing"

func TestSubtablePropertyValueConcatenates(t *testing.T) {
	st := &Subtable{
		PropertyName: "Test",
		Entries: []Entry{
			NewSingleEntry(0x10, 0x20, "A"),
			NewSingleEntry(0x18, 0x18, "B"),
		},
	}
	v, ok := st.PropertyValue(0x18)
	if !ok || v != "AB" {
		t.Fatalf("got %q, %v; want AB, true", v, ok)
	}
	v2, ok2 := st.PropertyValue(0x11)
	if !ok2 || v2 != "A" {
		t.Fatalf("got %q, %v; want A, true", v2, ok2)
	}
	if _, ok3 := st.PropertyValue(0x50); ok3 {
		t.Fatal("expected no value outside any entry's range")
	}
}

func TestIsSortableDetectsOverlap(t *testing.T) {
	disjoint := &Subtable{Entries: []Entry{
		NewSingleEntry(0, 10, "a"),
		NewSingleEntry(11, 20, "b"),
	}}
	if !disjoint.IsSortable() {
		t.Error("disjoint ranges should be sortable")
	}

	overlapping := &Subtable{Entries: []Entry{
		NewSingleEntry(0, 10, "a"),
		NewSingleEntry(5, 20, "b"),
	}}
	if overlapping.IsSortable() {
		t.Error("overlapping ranges should not be sortable")
	}
}

func TestSortLeavesUnsortableSubtableAlone(t *testing.T) {
	st := &Subtable{Entries: []Entry{
		NewSingleEntry(10, 20, "second"),
		NewSingleEntry(0, 25, "first"),
	}}
	original := append([]Entry(nil), st.Entries...)
	st.Sort()
	if st.Entries[0] != original[0] || st.Entries[1] != original[1] {
		t.Fatal("unsortable subtable's entry order must not change")
	}
}

func TestSortOrdersDisjointEntries(t *testing.T) {
	st := &Subtable{Entries: []Entry{
		NewSingleEntry(20, 30, "second"),
		NewSingleEntry(0, 10, "first"),
	}}
	st.Sort()
	if st.Entries[0].FirstCodePoint() != 0 || st.Entries[1].FirstCodePoint() != 20 {
		t.Fatal("sortable subtable's entries must end up ordered by first code point")
	}
}

func TestTableSubtableCreateAndLookup(t *testing.T) {
	tbl := New()
	if tbl.Subtable("gc", false) != nil {
		t.Fatal("expected nil for missing subtable with create=false")
	}
	st := tbl.Subtable("gc", true)
	st.Entries = append(st.Entries, NewSingleEntry(0x41, 0x5A, "Lu"))

	if same := tbl.Subtable("gc", true); same != st {
		t.Fatal("expected the same subtable to be returned on a second lookup")
	}

	v, ok := tbl.PropertyValue("gc", 0x42)
	if !ok || v != "Lu" {
		t.Fatalf("got %q, %v; want Lu, true", v, ok)
	}
	if _, ok := tbl.PropertyValue("missing", 0x42); ok {
		t.Fatal("expected lookup of unknown property to fail")
	}
}

func TestRemoveEmptyDropsEmptySubtables(t *testing.T) {
	tbl := New()
	tbl.Subtable("empty", true)
	full := tbl.Subtable("full", true)
	full.Entries = append(full.Entries, NewSingleEntry(0, 0, "x"))

	tbl.removeEmpty()

	if len(tbl.Subtables) != 1 || tbl.Subtables[0].PropertyName != "full" {
		t.Fatalf("expected only the non-empty subtable to survive, got %v", tbl.Subtables)
	}
}
