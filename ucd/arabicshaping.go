package ucd

import (
	"fmt"
	"io"
	"sort"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// ArabicShapingCodec handles ArabicShaping.txt, which carries two
// properties per line (Joining_Type, Joining_Group) and whose
// decompiled output also looks up each code point's Name for the
// second column. Grounded on pypuaa.py's ArabicShapingCodec.
type ArabicShapingCodec struct{}

func (ArabicShapingCodec) FileName() string { return "ArabicShaping.txt" }
func (ArabicShapingCodec) PropertyNames() []string {
	return []string{"Joining_Type", "Joining_Group"}
}

func (ArabicShapingCodec) Compile(t *puaa.Table, r io.Reader) error {
	types := make(map[int]string)
	groups := make(map[int]string)
	err := eachLine(r, func(fields []string) {
		if len(fields) < 4 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		ty, gr := trim(fields[2]), trim(fields[3])
		for cp := fcp; cp <= lcp; cp++ {
			types[cp] = ty
			groups[cp] = gr
		}
	})
	if err != nil {
		return err
	}
	jt := t.Subtable("Joining_Type", true)
	jt.Entries = append(jt.Entries, puaa.EntriesFromStringMap(types)...)
	jg := t.Subtable("Joining_Group", true)
	jg.Entries = append(jg.Entries, entriesFromNameMap(groups)...)
	return nil
}

func (ArabicShapingCodec) Decompile(t *puaa.Table, w io.Writer) error {
	type row struct {
		name, joinType, joinGroup string
	}
	lines := make(map[int]*row)
	names := t.Subtable("Name", false)
	getName := func(cp int) string {
		if names == nil {
			return ""
		}
		v, _ := names.PropertyValue(cp)
		return v
	}
	addField := func(propertyName string, setField func(*row, string)) {
		st := t.Subtable(propertyName, false)
		if st == nil || len(st.Entries) == 0 {
			return
		}
		for _, e := range st.Entries {
			for cp := e.FirstCodePoint(); cp <= e.LastCodePoint(); cp++ {
				v, ok := e.PropertyValue(cp)
				if !ok || v == "" {
					continue
				}
				rec, ok := lines[cp]
				if !ok {
					rec = &row{name: getName(cp)}
					lines[cp] = rec
				}
				setField(rec, v)
			}
		}
	}
	addField("Joining_Type", func(r *row, v string) { r.joinType += v })
	addField("Joining_Group", func(r *row, v string) { r.joinGroup += v })

	cps := make([]int, 0, len(lines))
	for cp := range lines {
		cps = append(cps, cp)
	}
	sort.Ints(cps)
	for _, cp := range cps {
		r := lines[cp]
		if _, err := fmt.Fprintf(w, "%04X; %s; %s; %s\n", cp, r.name, r.joinType, r.joinGroup); err != nil {
			return err
		}
	}
	return nil
}
