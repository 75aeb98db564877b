package ucd

import (
	"fmt"
	"io"
	"sort"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// HangulSyllableTypeCodec handles HangulSyllableType.txt, whose
// Decompile groups runs by the code point at which each distinct
// value first appears rather than sorting the values themselves.
// Grounded on pypuaa.py's HangulSyllableTypeCodec.
type HangulSyllableTypeCodec struct{}

func (HangulSyllableTypeCodec) FileName() string        { return "HangulSyllableType.txt" }
func (HangulSyllableTypeCodec) PropertyNames() []string { return []string{"Hangul_Syllable_Type"} }

func (HangulSyllableTypeCodec) Compile(t *puaa.Table, r io.Reader) error {
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
	st := t.Subtable("Hangul_Syllable_Type", true)
	st.Entries = append(st.Entries, puaa.EntriesFromStringMap(values)...)
	return nil
}

func (HangulSyllableTypeCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Hangul_Syllable_Type", false)
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
