package ucd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// EquivalentUnifiedIdeographCodec handles
// EquivalentUnifiedIdeograph.txt: "range; hexValue". Grounded on
// pypuaa.py's EquivalentUnifiedIdeographCodec.
type EquivalentUnifiedIdeographCodec struct{}

func (EquivalentUnifiedIdeographCodec) FileName() string { return "EquivalentUnifiedIdeograph.txt" }
func (EquivalentUnifiedIdeographCodec) PropertyNames() []string {
	return []string{"Equivalent_Unified_Ideograph"}
}

func (EquivalentUnifiedIdeographCodec) Compile(t *puaa.Table, r io.Reader) error {
	values := make(map[int]uint32)
	err := eachLine(r, func(fields []string) {
		if len(fields) < 2 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		v, err := strconv.ParseUint(trim(fields[1]), 16, 32)
		if err != nil {
			return
		}
		for cp := fcp; cp <= lcp; cp++ {
			values[cp] = uint32(v)
		}
	})
	if err != nil {
		return err
	}
	st := t.Subtable("Equivalent_Unified_Ideograph", true)
	st.Entries = append(st.Entries, puaa.EntriesFromHexadecimalMap(values)...)
	return nil
}

func (EquivalentUnifiedIdeographCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Equivalent_Unified_Ideograph", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	for _, run := range puaa.RunsFromEntries(st.Entries) {
		if _, err := fmt.Fprintf(w, "%-11s; %s\n", joinRange(run.FirstCodePoint(), run.LastCodePoint()), run.Value); err != nil {
			return err
		}
	}
	return nil
}
