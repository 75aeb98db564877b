package ucd

import (
	"fmt"
	"io"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// PropListCodec handles UCD files that list several independent
// boolean properties, one "range; Property_Name" line per range
// (PropList.txt, emoji-data.txt). Grounded on pypuaa.py's
// PuaaPropListCodec.
type PropListCodec struct {
	fileName      string
	propertyNames []string
}

// NewPropListCodec returns a PropListCodec for fileName. Compile
// records every property named in the file, whether or not it is in
// propertyNames; Decompile re-emits only the properties listed in
// propertyNames, in that order.
func NewPropListCodec(fileName string, propertyNames []string) *PropListCodec {
	return &PropListCodec{fileName, propertyNames}
}

func (c *PropListCodec) FileName() string        { return c.fileName }
func (c *PropListCodec) PropertyNames() []string { return c.propertyNames }

func (c *PropListCodec) Compile(t *puaa.Table, r io.Reader) error {
	props := make(map[string]map[int]bool)
	err := eachLine(r, func(fields []string) {
		if len(fields) < 2 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		prop := trim(fields[1])
		m, ok := props[prop]
		if !ok {
			m = make(map[int]bool)
			props[prop] = m
		}
		for cp := fcp; cp <= lcp; cp++ {
			m[cp] = true
		}
	})
	if err != nil {
		return err
	}
	for prop, m := range props {
		st := t.Subtable(prop, true)
		st.Entries = append(st.Entries, puaa.EntriesFromBooleanMap(m)...)
	}
	return nil
}

func (c *PropListCodec) Decompile(t *puaa.Table, w io.Writer) error {
	for _, prop := range c.propertyNames {
		st := t.Subtable(prop, false)
		if st == nil || len(st.Entries) == 0 {
			continue
		}
		for _, run := range puaa.RunsFromEntries(st.Entries) {
			if run.Value != "Y" {
				continue
			}
			if _, err := fmt.Fprintf(w, "%-14s; %s\n", joinRange(run.FirstCodePoint(), run.LastCodePoint()), prop); err != nil {
				return err
			}
		}
	}
	return nil
}
