package puaa

import (
	"sort"

	"github.com/kreativekorp/openrelay-tools/bitset"
)

// Subtable holds every Entry recorded for a single Unicode property.
type Subtable struct {
	PropertyName string
	Entries      []Entry
}

// PropertyValue returns the value of this property at cp, concatenated
// across every entry whose range contains cp (ordinarily there is at
// most one, but codecs such as ArabicShapingCodec deliberately record
// more than one partial value per code point).
func (s *Subtable) PropertyValue(cp int) (string, bool) {
	var result string
	found := false
	for _, e := range s.Entries {
		if !e.Contains(cp) {
			continue
		}
		v, ok := e.PropertyValue(cp)
		if !ok || v == "" {
			continue
		}
		if !found {
			result = v
		} else {
			result += v
		}
		found = true
	}
	return result, found
}

// IsSortable reports whether every entry's code point range is
// pairwise disjoint from every other entry's range. Only sortable
// subtables may have their entries reordered: entries built by
// entriesFromNameMap's prefix/suffix decomposition rely on
// concatenation order and must never be sorted.
func (s *Subtable) IsSortable() bool {
	seen := bitset.New()
	for _, e := range s.Entries {
		if seen.GetAny(e.FirstCodePoint(), e.LastCodePoint()) {
			return false
		}
		seen.SetAll(e.FirstCodePoint(), e.LastCodePoint())
	}
	return true
}

// Sort orders the subtable's entries by (first, last) code point, but
// only if IsSortable reports true.
func (s *Subtable) Sort() {
	if !s.IsSortable() {
		return
	}
	sort.SliceStable(s.Entries, func(i, j int) bool {
		a, b := s.Entries[i], s.Entries[j]
		if a.FirstCodePoint() != b.FirstCodePoint() {
			return a.FirstCodePoint() < b.FirstCodePoint()
		}
		return a.LastCodePoint() < b.LastCodePoint()
	})
}

// Table is the full PUAA property model: a set of named subtables,
// one per Unicode property.
type Table struct {
	Subtables []*Subtable
}

// New returns an empty Table.
func New() *Table {
	return &Table{}
}

// Subtable returns the named subtable. If it does not exist and
// create is true, a new empty subtable is appended and returned.
func (t *Table) Subtable(propertyName string, create bool) *Subtable {
	for _, st := range t.Subtables {
		if st.PropertyName == propertyName {
			return st
		}
	}
	if !create {
		return nil
	}
	st := &Subtable{PropertyName: propertyName}
	t.Subtables = append(t.Subtables, st)
	return st
}

// PropertyValue looks up a property by name and returns its value at
// cp, or ("", false) if the property or a value at cp is absent.
func (t *Table) PropertyValue(propertyName string, cp int) (string, bool) {
	for _, st := range t.Subtables {
		if st.PropertyName == propertyName {
			return st.PropertyValue(cp)
		}
	}
	return "", false
}

// removeEmpty drops subtables with no entries, matching the compiler's
// behaviour of never emitting an empty directory entry.
func (t *Table) removeEmpty() {
	kept := t.Subtables[:0]
	for _, st := range t.Subtables {
		if len(st.Entries) > 0 {
			kept = append(kept, st)
		}
	}
	t.Subtables = kept
}

// sortSubtables orders subtables by property name and sorts each
// subtable's entries (where sortable), matching the reference
// compiler's canonicalisation before encoding.
func (t *Table) sortSubtables() {
	sort.Slice(t.Subtables, func(i, j int) bool {
		return t.Subtables[i].PropertyName < t.Subtables[j].PropertyName
	})
	for _, st := range t.Subtables {
		st.Sort()
	}
}
