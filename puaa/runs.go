package puaa

import "sort"

// appendToEntry tries to extend entry to include cp with the given
// value, returning whether it succeeded. It fails if entry is nil, if
// extending would cross a 64K-plane boundary, if cp isn't immediately
// after the entry's current last code point, or if the entry's type
// can't absorb value without losing information.
func appendToEntry(entry Entry, cp int, value any) bool {
	if entry == nil {
		return false
	}
	if entry.LastCodePoint()&0xFFFF == 0xFFFF {
		return false
	}
	if entry.LastCodePoint()+1 != cp {
		return false
	}
	return entry.extend(cp, value)
}

// AppendToEntry is the exported form of the run-extension rule, used
// by the ucd package's name-map splitter to drive the same
// prefix/suffix merging from outside this package.
func AppendToEntry(entry Entry, cp int, value any) bool {
	return appendToEntry(entry, cp, value)
}

// stringItem is one (code point, value) pair from a map, in code
// point order, after dropping entries with an empty value.
type stringItem struct {
	cp    int
	value string
}

func sortedStringMap(m map[int]string) []stringItem {
	items := make([]stringItem, 0, len(m))
	for cp, v := range m {
		if v == "" {
			continue
		}
		items = append(items, stringItem{cp, v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].cp < items[j].cp })
	return items
}

type boolItem struct {
	cp    int
	value bool
}

func sortedBoolMap(m map[int]bool) []boolItem {
	items := make([]boolItem, 0, len(m))
	for cp, v := range m {
		items = append(items, boolItem{cp, v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].cp < items[j].cp })
	return items
}

type int32Item struct {
	cp    int
	value int32
}

func sortedInt32Map(m map[int]int32) []int32Item {
	items := make([]int32Item, 0, len(m))
	for cp, v := range m {
		items = append(items, int32Item{cp, v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].cp < items[j].cp })
	return items
}

type uint32Item struct {
	cp    int
	value uint32
}

func sortedUint32Map(m map[int]uint32) []uint32Item {
	items := make([]uint32Item, 0, len(m))
	for cp, v := range m {
		items = append(items, uint32Item{cp, v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].cp < items[j].cp })
	return items
}

type uint32SliceItem struct {
	cp    int
	value []uint32
}

func sortedUint32SliceMap(m map[int][]uint32) []uint32SliceItem {
	items := make([]uint32SliceItem, 0, len(m))
	for cp, v := range m {
		if len(v) == 0 {
			continue
		}
		items = append(items, uint32SliceItem{cp, v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].cp < items[j].cp })
	return items
}

// runsFromStringMap collapses consecutive code points carrying the
// same string value into single-value SingleEntry runs, without
// further merging runs of length 1 into MultipleEntry (that extra
// pass is entriesFromStringMap).
func runsFromStringMap(m map[int]string) []*SingleEntry {
	var runs []*SingleEntry
	var current Entry
	for _, it := range sortedStringMap(m) {
		if !appendToEntry(current, it.cp, it.value) {
			e := NewSingleEntry(it.cp, it.cp, it.value)
			runs = append(runs, e)
			current = e
		}
	}
	return runs
}

// entriesFromStringMap builds the entry list for a property whose
// values are strings: runs of identical adjacent values become
// SingleEntry; runs of distinct single-code-point values become one
// MultipleEntry (or collapse back to a SingleEntry when the run covers
// only one code point).
func entriesFromStringMap(m map[int]string) []Entry {
	runs := runsFromStringMap(m)
	return entriesFromSingleRuns(runs)
}

// entriesFromSingleRuns implements the reference compiler's two-stage
// run-then-entry merge for string values, building SingleEntry and
// MultipleEntry values from runs of SingleEntry.
func entriesFromSingleRuns(runs []*SingleEntry) []Entry {
	var entries []Entry
	var current Entry
	for _, run := range runs {
		if run.FirstCodePoint() != run.LastCodePoint() {
			current = nil
			entries = append(entries, run)
			continue
		}
		if appendToEntry(current, run.FirstCodePoint(), run.Value) {
			continue
		}
		m := NewMultipleEntry(run.FirstCodePoint(), run.LastCodePoint(), []string{run.Value})
		current = m
		entries = append(entries, m)
	}
	// Collapse any single-code-point MultipleEntry back to a SingleEntry.
	for i, e := range entries {
		if m, ok := e.(*MultipleEntry); ok && m.FirstCodePoint() == m.LastCodePoint() {
			entries[i] = NewSingleEntry(m.FirstCodePoint(), m.LastCodePoint(), m.Values[0])
		}
	}
	return entries
}

func entriesFromBooleanMap(m map[int]bool) []Entry {
	var entries []Entry
	var current Entry
	for _, it := range sortedBoolMap(m) {
		if appendToEntry(current, it.cp, it.value) {
			continue
		}
		e := NewBooleanEntry(it.cp, it.cp, it.value)
		current = e
		entries = append(entries, e)
	}
	return entries
}

func entriesFromDecimalMap(m map[int]int32) []Entry {
	var entries []Entry
	var current Entry
	for _, it := range sortedInt32Map(m) {
		if appendToEntry(current, it.cp, it.value) {
			continue
		}
		e := NewDecimalEntry(it.cp, it.cp, it.value)
		current = e
		entries = append(entries, e)
	}
	return entries
}

// runsFromHexadecimalMap mirrors runsFromStringMap but for hex values.
func runsFromHexadecimalMap(m map[int]uint32) []*HexadecimalEntry {
	var runs []*HexadecimalEntry
	var current Entry
	for _, it := range sortedUint32Map(m) {
		if appendToEntry(current, it.cp, it.value) {
			continue
		}
		e := NewHexadecimalEntry(it.cp, it.cp, it.value)
		runs = append(runs, e)
		current = e
	}
	return runs
}

func entriesFromHexadecimalMap(m map[int]uint32) []Entry {
	runs := runsFromHexadecimalMap(m)
	var entries []Entry
	var current Entry
	for _, run := range runs {
		if run.FirstCodePoint() != run.LastCodePoint() {
			current = nil
			entries = append(entries, run)
			continue
		}
		if appendToEntry(current, run.FirstCodePoint(), run.Value) {
			continue
		}
		e := NewHexMultipleEntry(run.FirstCodePoint(), run.LastCodePoint(), []uint32{run.Value})
		current = e
		entries = append(entries, e)
	}
	for i, e := range entries {
		if hm, ok := e.(*HexMultipleEntry); ok && hm.FirstCodePoint() == hm.LastCodePoint() {
			entries[i] = NewHexadecimalEntry(hm.FirstCodePoint(), hm.LastCodePoint(), hm.Values[0])
		}
	}
	return entries
}

func entriesFromHexSequenceMap(m map[int][]uint32) []Entry {
	var entries []Entry
	var current Entry
	for _, it := range sortedUint32SliceMap(m) {
		if appendToEntry(current, it.cp, it.value) {
			continue
		}
		e := NewHexSequenceEntry(it.cp, it.cp, it.value)
		current = e
		entries = append(entries, e)
	}
	return entries
}

// EntriesFromStringMap is the exported form of entriesFromStringMap,
// for ucd codecs that build a property directly from a per-code-point
// string map.
func EntriesFromStringMap(m map[int]string) []Entry { return entriesFromStringMap(m) }

// EntriesFromBooleanMap is the exported form of entriesFromBooleanMap.
func EntriesFromBooleanMap(m map[int]bool) []Entry { return entriesFromBooleanMap(m) }

// EntriesFromDecimalMap is the exported form of entriesFromDecimalMap.
func EntriesFromDecimalMap(m map[int]int32) []Entry { return entriesFromDecimalMap(m) }

// EntriesFromHexadecimalMap is the exported form of entriesFromHexadecimalMap.
func EntriesFromHexadecimalMap(m map[int]uint32) []Entry { return entriesFromHexadecimalMap(m) }

// EntriesFromHexSequenceMap is the exported form of entriesFromHexSequenceMap.
func EntriesFromHexSequenceMap(m map[int][]uint32) []Entry { return entriesFromHexSequenceMap(m) }

// mapFromEntries flattens a subtable's entries back into a per-code-
// point map, concatenating values for code points covered by more
// than one entry (mirroring Subtable.PropertyValue's accumulation).
func mapFromEntries(entries []Entry) map[int]string {
	m := make(map[int]string)
	for _, e := range entries {
		for cp := e.FirstCodePoint(); cp <= e.LastCodePoint(); cp++ {
			v, ok := e.PropertyValue(cp)
			if !ok || v == "" {
				continue
			}
			if existing, had := m[cp]; had {
				m[cp] = existing + v
			} else {
				m[cp] = v
			}
		}
	}
	return m
}

// MapFromEntries is the exported form of mapFromEntries, for ucd
// codecs that need to re-flatten a subtable's entries per code point
// (e.g. to regroup several properties back onto one output line).
func MapFromEntries(entries []Entry) map[int]string { return mapFromEntries(entries) }

// RunsFromEntries re-derives SingleEntry runs of identical adjacent
// values from a subtable's (possibly overlapping, possibly
// order-dependent) entries — the inverse of compilation, used when
// decompiling back to UCD text.
func RunsFromEntries(entries []Entry) []*SingleEntry {
	return runsFromStringMap(mapFromEntries(entries))
}
