package ucd

import (
	"fmt"
	"io"
	"sort"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// ScriptsCodec handles Scripts.txt: "range; Script", with Decompile
// grouping runs by the code point at which each script first appears.
// Grounded on pypuaa.py's ScriptsCodec.
type ScriptsCodec struct{}

func (ScriptsCodec) FileName() string        { return "Scripts.txt" }
func (ScriptsCodec) PropertyNames() []string { return []string{"Script"} }

func (ScriptsCodec) Compile(t *puaa.Table, r io.Reader) error {
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
	st := t.Subtable("Script", true)
	st.Entries = append(st.Entries, puaa.EntriesFromStringMap(values)...)
	return nil
}

func (ScriptsCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Script", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	runs := puaa.RunsFromEntries(st.Entries)
	firstOf := make(map[string]int)
	for _, run := range runs {
		if existing, ok := firstOf[run.Value]; !ok || run.FirstCodePoint() < existing {
			firstOf[run.Value] = run.FirstCodePoint()
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if firstOf[a.Value] != firstOf[b.Value] {
			return firstOf[a.Value] < firstOf[b.Value]
		}
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		if a.FirstCodePoint() != b.FirstCodePoint() {
			return a.FirstCodePoint() < b.FirstCodePoint()
		}
		return a.LastCodePoint() < b.LastCodePoint()
	})
	for _, run := range runs {
		if _, err := fmt.Fprintf(w, "%-14s; %s\n", joinRange(run.FirstCodePoint(), run.LastCodePoint()), run.Value); err != nil {
			return err
		}
	}
	return nil
}
