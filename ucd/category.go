package ucd

import (
	"fmt"
	"io"
	"sort"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// CategoryCodec handles UCD files of the form "range; value" where
// value is drawn from a small fixed enumeration (GraphemeBreakProperty,
// IndicPositionalCategory, IndicSyllabicCategory, SentenceBreakProperty,
// WordBreakProperty), and whose decompiled output lists runs grouped by
// that enumeration's declared order rather than alphabetically or by
// code point. Grounded on pypuaa.py's PuaaCategoryCodec.
type CategoryCodec struct {
	fileName       string
	propertyName   string
	propertyValues []string
}

// NewCategoryCodec returns a CategoryCodec for the given property,
// whose enumerated values (in Decompile's desired output order) are
// propertyValues.
func NewCategoryCodec(fileName, propertyName string, propertyValues []string) *CategoryCodec {
	return &CategoryCodec{fileName, propertyName, propertyValues}
}

func (c *CategoryCodec) FileName() string        { return c.fileName }
func (c *CategoryCodec) PropertyNames() []string { return []string{c.propertyName} }

func (c *CategoryCodec) Compile(t *puaa.Table, r io.Reader) error {
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
	st := t.Subtable(c.propertyName, true)
	st.Entries = append(st.Entries, puaa.EntriesFromStringMap(values)...)
	return nil
}

func (c *CategoryCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable(c.propertyName, false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	runs := puaa.RunsFromEntries(st.Entries)
	indexOf := func(v string) int {
		for i, pv := range c.propertyValues {
			if pv == v {
				return i
			}
		}
		return len(c.propertyValues)
	}
	sort.Slice(runs, func(i, j int) bool {
		ai, aj := indexOf(runs[i].Value), indexOf(runs[j].Value)
		if ai != aj {
			return ai < aj
		}
		if runs[i].Value != runs[j].Value {
			return runs[i].Value < runs[j].Value
		}
		if runs[i].FirstCodePoint() != runs[j].FirstCodePoint() {
			return runs[i].FirstCodePoint() < runs[j].FirstCodePoint()
		}
		return runs[i].LastCodePoint() < runs[j].LastCodePoint()
	})
	for _, run := range runs {
		if _, err := fmt.Fprintf(w, "%-14s; %s\n", joinRange(run.FirstCodePoint(), run.LastCodePoint()), run.Value); err != nil {
			return err
		}
	}
	return nil
}
