package ucd

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// BidiBracketsCodec handles BidiBrackets.txt: "range; pairedBracket;
// type" lines feeding two properties. Grounded on pypuaa.py's
// BidiBracketsCodec.
type BidiBracketsCodec struct{}

func (BidiBracketsCodec) FileName() string { return "BidiBrackets.txt" }
func (BidiBracketsCodec) PropertyNames() []string {
	return []string{"Bidi_Paired_Bracket", "Bidi_Paired_Bracket_Type"}
}

func (BidiBracketsCodec) Compile(t *puaa.Table, r io.Reader) error {
	values := make(map[int]uint32)
	types := make(map[int]string)
	err := eachLine(r, func(fields []string) {
		if len(fields) < 3 {
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
		ty := trim(fields[2])
		for cp := fcp; cp <= lcp; cp++ {
			values[cp] = uint32(v)
			types[cp] = ty
		}
	})
	if err != nil {
		return err
	}
	bv := t.Subtable("Bidi_Paired_Bracket", true)
	bv.Entries = append(bv.Entries, puaa.EntriesFromHexadecimalMap(values)...)
	bt := t.Subtable("Bidi_Paired_Bracket_Type", true)
	bt.Entries = append(bt.Entries, puaa.EntriesFromStringMap(types)...)
	return nil
}

func (BidiBracketsCodec) Decompile(t *puaa.Table, w io.Writer) error {
	lines := make(map[int][2]string)
	addField := func(propertyName string, idx int) {
		st := t.Subtable(propertyName, false)
		if st == nil || len(st.Entries) == 0 {
			return
		}
		for cp, v := range puaa.MapFromEntries(st.Entries) {
			row := lines[cp]
			row[idx] = v
			lines[cp] = row
		}
	}
	addField("Bidi_Paired_Bracket", 0)
	addField("Bidi_Paired_Bracket_Type", 1)

	cps := make([]int, 0, len(lines))
	for cp := range lines {
		cps = append(cps, cp)
	}
	sort.Ints(cps)
	for _, cp := range cps {
		row := lines[cp]
		if _, err := fmt.Fprintf(w, "%04X; %s; %s\n", cp, row[0], row[1]); err != nil {
			return err
		}
	}
	return nil
}
