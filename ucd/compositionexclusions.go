package ucd

import (
	"fmt"
	"io"
	"sort"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// CompositionExclusionsCodec handles CompositionExclusions.txt: one
// code point or range per line, each marking Composition_Exclusion=Y.
// Grounded on pypuaa.py's CompositionExclusionsCodec.
type CompositionExclusionsCodec struct{}

func (CompositionExclusionsCodec) FileName() string        { return "CompositionExclusions.txt" }
func (CompositionExclusionsCodec) PropertyNames() []string { return []string{"Composition_Exclusion"} }

func (CompositionExclusionsCodec) Compile(t *puaa.Table, r io.Reader) error {
	values := make(map[int]bool)
	err := eachLine(r, func(fields []string) {
		if len(fields) < 1 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		for cp := fcp; cp <= lcp; cp++ {
			values[cp] = true
		}
	})
	if err != nil {
		return err
	}
	st := t.Subtable("Composition_Exclusion", true)
	st.Entries = append(st.Entries, puaa.EntriesFromBooleanMap(values)...)
	return nil
}

func (CompositionExclusionsCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Composition_Exclusion", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	m := puaa.MapFromEntries(st.Entries)
	cps := make([]int, 0, len(m))
	for cp, v := range m {
		if v == "Y" {
			cps = append(cps, cp)
		}
	}
	sort.Ints(cps)
	for _, cp := range cps {
		if _, err := fmt.Fprintf(w, "%04X\n", cp); err != nil {
			return err
		}
	}
	return nil
}
