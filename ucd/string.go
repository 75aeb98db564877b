package ucd

import (
	"fmt"
	"io"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// StringCodec handles UCD files of the simple "range; value" shape
// where value is free-form text (EastAsianWidth.txt, LineBreak.txt,
// VerticalOrientation.txt). Grounded on pypuaa.py's PuaaStringCodec.
type StringCodec struct {
	fileName     string
	propertyName string
	formatString string // fmt.Sprintf format taking (range, value)
}

// NewStringCodec returns a StringCodec for propertyName, writing each
// decompiled line with formatString (e.g. "%s;%s\n").
func NewStringCodec(fileName, propertyName, formatString string) *StringCodec {
	return &StringCodec{fileName, propertyName, formatString}
}

func (c *StringCodec) FileName() string        { return c.fileName }
func (c *StringCodec) PropertyNames() []string { return []string{c.propertyName} }

func (c *StringCodec) Compile(t *puaa.Table, r io.Reader) error {
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

func (c *StringCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable(c.propertyName, false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	for _, run := range puaa.RunsFromEntries(st.Entries) {
		if _, err := fmt.Fprintf(w, c.formatString, joinRange(run.FirstCodePoint(), run.LastCodePoint()), run.Value); err != nil {
			return err
		}
	}
	return nil
}
