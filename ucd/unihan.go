package ucd

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// UnihanCodec handles the Unihan_*.txt database files: tab/space
// separated "U+XXXX\tkProperty\tvalue" lines covering several
// properties per file. Each property's values are tried as decimal,
// then hexadecimal, then (falling back for free-form text properties
// like kDefinition) as a name map. Grounded on pypuaa.py's
// PuaaUnihanCodec.
type UnihanCodec struct {
	fileName      string
	propertyNames []string
}

// NewUnihanCodec returns a UnihanCodec recognising propertyNames.
func NewUnihanCodec(fileName string, propertyNames []string) *UnihanCodec {
	return &UnihanCodec{fileName, propertyNames}
}

func (c *UnihanCodec) FileName() string        { return c.fileName }
func (c *UnihanCodec) PropertyNames() []string { return c.propertyNames }

var unihanFields = regexp.MustCompile(`\s+`)
var unihanCodePointPrefix = regexp.MustCompile(`^([Uu][+]|0[Xx])`)

func (c *UnihanCodec) Compile(t *puaa.Table, r io.Reader) error {
	props := make(map[string]map[int]string)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := unihanFields.Split(line, 3)
		if len(fields) < 3 {
			continue
		}
		cpField := unihanCodePointPrefix.ReplaceAllString(fields[0], "")
		cp64, err := strconv.ParseInt(cpField, 16, 32)
		if err != nil {
			continue
		}
		m, ok := props[fields[1]]
		if !ok {
			m = make(map[int]string)
			props[fields[1]] = m
		}
		m[int(cp64)] = fields[2]
	}
	if err := sc.Err(); err != nil {
		return err
	}
	for prop, m := range props {
		entries, ok := entriesFromDecimalStringMap(m)
		if !ok {
			entries, ok = entriesFromHexadecimalStringMap(m)
		}
		if !ok {
			entries = entriesFromNameMap(m)
		}
		st := t.Subtable(prop, true)
		st.Entries = append(st.Entries, entries...)
	}
	return nil
}

func (c *UnihanCodec) Decompile(t *puaa.Table, w io.Writer) error {
	byCP := make(map[int]map[string]string)
	for _, prop := range c.propertyNames {
		st := t.Subtable(prop, false)
		if st == nil || len(st.Entries) == 0 {
			continue
		}
		for cp, v := range puaa.MapFromEntries(st.Entries) {
			m, ok := byCP[cp]
			if !ok {
				m = make(map[string]string)
				byCP[cp] = m
			}
			m[prop] = v
		}
	}
	cps := make([]int, 0, len(byCP))
	for cp := range byCP {
		cps = append(cps, cp)
	}
	sort.Ints(cps)
	for _, cp := range cps {
		m := byCP[cp]
		for _, prop := range c.propertyNames {
			v, ok := m[prop]
			if !ok || v == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "U+%04X\t%s\t%s\n", cp, prop, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func entriesFromDecimalStringMap(m map[int]string) ([]puaa.Entry, bool) {
	vals := make(map[int]int32, len(m))
	for cp, sv := range m {
		n, err := strconv.ParseInt(sv, 10, 32)
		if err != nil || fmt.Sprintf("%d", n) != sv {
			return nil, false
		}
		vals[cp] = int32(n)
	}
	return puaa.EntriesFromDecimalMap(vals), true
}

func entriesFromHexadecimalStringMap(m map[int]string) ([]puaa.Entry, bool) {
	vals := make(map[int]uint32, len(m))
	for cp, sv := range m {
		n, err := strconv.ParseUint(sv, 16, 32)
		if err != nil || fmt.Sprintf("%04X", n) != sv {
			return nil, false
		}
		vals[cp] = uint32(n)
	}
	return puaa.EntriesFromHexadecimalMap(vals), true
}
