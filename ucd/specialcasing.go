package ucd

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// SpecialCasingCodec handles SpecialCasing.txt: "cp; lower; title;
// upper; [condition;]" lines, one CaseMappingEntry per non-empty
// mapping column. Grounded on pypuaa.py's SpecialCasingCodec.
type SpecialCasingCodec struct{}

func (SpecialCasingCodec) FileName() string { return "SpecialCasing.txt" }
func (SpecialCasingCodec) PropertyNames() []string {
	return []string{"Lowercase_Mapping", "Titlecase_Mapping", "Uppercase_Mapping"}
}

var hexWordSplit = regexp.MustCompile(`\s+`)

func parseHexWords(s string) ([]uint32, bool) {
	s = trim(s)
	if s == "" {
		return nil, false
	}
	words := hexWordSplit.Split(s, -1)
	out := make([]uint32, 0, len(words))
	for _, w := range words {
		n, err := strconv.ParseUint(w, 16, 32)
		if err != nil {
			return nil, false
		}
		out = append(out, uint32(n))
	}
	return out, len(out) > 0
}

func (SpecialCasingCodec) Compile(t *puaa.Table, r io.Reader) error {
	lower := t.Subtable("Lowercase_Mapping", true)
	title := t.Subtable("Titlecase_Mapping", true)
	upper := t.Subtable("Uppercase_Mapping", true)
	return eachLine(r, func(fields []string) {
		if len(fields) < 4 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		var condition string
		if len(fields) > 4 {
			condition = trim(fields[4])
		}
		if lc, ok := parseHexWords(fields[1]); ok {
			lower.Entries = append(lower.Entries, puaa.NewCaseMappingEntry(fcp, lcp, lc, condition))
		}
		if tc, ok := parseHexWords(fields[2]); ok {
			title.Entries = append(title.Entries, puaa.NewCaseMappingEntry(fcp, lcp, tc, condition))
		}
		if uc, ok := parseHexWords(fields[3]); ok {
			upper.Entries = append(upper.Entries, puaa.NewCaseMappingEntry(fcp, lcp, uc, condition))
		}
	})
}

func (SpecialCasingCodec) Decompile(t *puaa.Table, w io.Writer) error {
	type row struct {
		cp                            int
		lower, title, upper           string
		condition                     string
		hasCondition                  bool
	}
	var keys []string
	lines := make(map[string]*row)

	addLines := func(propertyName string, set func(*row, string)) {
		st := t.Subtable(propertyName, false)
		if st == nil || len(st.Entries) == 0 {
			return
		}
		for _, e := range st.Entries {
			for cp := e.FirstCodePoint(); cp <= e.LastCodePoint(); cp++ {
				value, ok := e.PropertyValue(cp)
				if !ok || value == "" {
					continue
				}
				condition := ""
				hasCondition := false
				if idx := strings.Index(value, ";"); idx >= 0 {
					condition = trim(value[idx+1:])
					value = trim(value[:idx])
					hasCondition = true
				}
				key := fmt.Sprintf("%08X%s", 0xC0000000+cp, condition)
				rec, ok := lines[key]
				if !ok {
					rec = &row{cp: cp, condition: condition, hasCondition: hasCondition}
					lines[key] = rec
					keys = append(keys, key)
				}
				set(rec, value)
			}
		}
	}
	addLines("Lowercase_Mapping", func(r *row, v string) { r.lower = v })
	addLines("Titlecase_Mapping", func(r *row, v string) { r.title = v })
	addLines("Uppercase_Mapping", func(r *row, v string) { r.upper = v })

	for _, key := range keys {
		r := lines[key]
		if !r.hasCondition {
			if _, err := fmt.Fprintf(w, "%04X; %s; %s; %s;\n", r.cp, r.lower, r.title, r.upper); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%04X; %s; %s; %s; %s;\n", r.cp, r.lower, r.title, r.upper, r.condition); err != nil {
			return err
		}
	}
	return nil
}
