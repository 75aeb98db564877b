package ucd

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// BidiMirroringCodec handles BidiMirroring.txt: "range; mirrorGlyph".
// Grounded on pypuaa.py's BidiMirroringCodec.
type BidiMirroringCodec struct{}

func (BidiMirroringCodec) FileName() string        { return "BidiMirroring.txt" }
func (BidiMirroringCodec) PropertyNames() []string { return []string{"Bidi_Mirroring_Glyph"} }

func (BidiMirroringCodec) Compile(t *puaa.Table, r io.Reader) error {
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
	st := t.Subtable("Bidi_Mirroring_Glyph", true)
	st.Entries = append(st.Entries, puaa.EntriesFromHexadecimalMap(values)...)
	return nil
}

func (BidiMirroringCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Bidi_Mirroring_Glyph", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	m := puaa.MapFromEntries(st.Entries)
	cps := make([]int, 0, len(m))
	for cp := range m {
		cps = append(cps, cp)
	}
	sort.Ints(cps)
	for _, cp := range cps {
		if _, err := fmt.Fprintf(w, "%04X; %s\n", cp, m[cp]); err != nil {
			return err
		}
	}
	return nil
}
