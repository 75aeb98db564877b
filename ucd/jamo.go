package ucd

import (
	"fmt"
	"io"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// JamoCodec handles Jamo.txt: "range; shortName", where U+110B's short
// name is the empty string (a Jamo filler with no short name), so
// entries are appended directly without going through
// entriesFromStringMap's empty-value-drops-the-entry rule. Grounded on
// pypuaa.py's JamoCodec.
type JamoCodec struct{}

func (JamoCodec) FileName() string        { return "Jamo.txt" }
func (JamoCodec) PropertyNames() []string { return []string{"Jamo_Short_Name"} }

func (JamoCodec) Compile(t *puaa.Table, r io.Reader) error {
	st := t.Subtable("Jamo_Short_Name", true)
	return eachLine(r, func(fields []string) {
		if len(fields) < 1 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		v := ""
		if len(fields) > 1 {
			v = trim(fields[1])
		}
		st.Entries = append(st.Entries, puaa.NewSingleEntry(fcp, lcp, v))
	})
}

func (JamoCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Jamo_Short_Name", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	for _, e := range st.Entries {
		for cp := e.FirstCodePoint(); cp <= e.LastCodePoint(); cp++ {
			v, _ := e.PropertyValue(cp)
			if _, err := fmt.Fprintf(w, "%04X; %s\n", cp, v); err != nil {
				return err
			}
		}
	}
	return nil
}
