package ucd

import (
	"fmt"
	"io"
	"sort"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// DerivedAgeCodec handles DerivedAge.txt: "range; Age" lines, with
// Decompile ordering runs by a natural sort of the version string
// (so "2.0" sorts before "10.0") rather than lexicographically.
// Grounded on pypuaa.py's DerivedAgeCodec and naturalSortKey.
type DerivedAgeCodec struct{}

func (DerivedAgeCodec) FileName() string        { return "DerivedAge.txt" }
func (DerivedAgeCodec) PropertyNames() []string { return []string{"Age"} }

func (DerivedAgeCodec) Compile(t *puaa.Table, r io.Reader) error {
	values := make(map[int]string)
	err := eachLine(r, func(fields []string) {
		if len(fields) < 2 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		v := trim(fields[1])
		for cp := fcp; cp <= lcp; cp++ {
			values[cp] = v
		}
	})
	if err != nil {
		return err
	}
	st := t.Subtable("Age", true)
	st.Entries = append(st.Entries, puaa.EntriesFromStringMap(values)...)
	return nil
}

func (DerivedAgeCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Age", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	runs := puaa.RunsFromEntries(st.Entries)
	sort.Slice(runs, func(i, j int) bool {
		c := compareNaturalKeys(naturalSortKey(runs[i].Value), naturalSortKey(runs[j].Value))
		if c != 0 {
			return c < 0
		}
		if runs[i].FirstCodePoint() != runs[j].FirstCodePoint() {
			return runs[i].FirstCodePoint() < runs[j].FirstCodePoint()
		}
		return runs[i].LastCodePoint() < runs[j].LastCodePoint()
	})
	for _, run := range runs {
		if _, err := fmt.Fprintf(w, "%-14s; %s\n", joinRange(run.FirstCodePoint(), run.LastCodePoint()), run.Value); err != nil {
			return err
		}
	}
	return nil
}
