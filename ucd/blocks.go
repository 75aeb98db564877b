package ucd

import (
	"fmt"
	"io"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// BlocksCodec handles Blocks.txt: "range; Block_Name", one SingleEntry
// per block with no run-merging (blocks are already maximal disjoint
// ranges, and Decompile must echo them back in file order, not sorted
// by code point, to survive a byte-identical round trip). Grounded on
// pypuaa.py's BlocksCodec.
type BlocksCodec struct{}

func (BlocksCodec) FileName() string        { return "Blocks.txt" }
func (BlocksCodec) PropertyNames() []string { return []string{"Block"} }

func (BlocksCodec) Compile(t *puaa.Table, r io.Reader) error {
	st := t.Subtable("Block", true)
	return eachLine(r, func(fields []string) {
		if len(fields) < 2 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		st.Entries = append(st.Entries, puaa.NewSingleEntry(fcp, lcp, trim(fields[1])))
	})
}

func (BlocksCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Block", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	for _, e := range st.Entries {
		v, _ := e.PropertyValue(e.FirstCodePoint())
		if _, err := fmt.Fprintf(w, "%s; %s\n", joinRange(e.FirstCodePoint(), e.LastCodePoint()), v); err != nil {
			return err
		}
	}
	return nil
}
