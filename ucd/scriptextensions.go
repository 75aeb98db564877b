package ucd

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// ScriptExtensionsCodec handles ScriptExtensions.txt: "range; Scr1
// Scr2 ...". Compile builds one intermediate string-map entry list per
// distinct script token (so each token's own runs merge independently)
// before concatenating them all into the Script_Extensions subtable;
// Decompile re-explodes each code point's concatenated value, re-joins
// and re-sorts the token set, then re-merges by value before emitting,
// exactly mirroring pypuaa.py's ScriptExtensionsCodec two-stage
// grouping.
type ScriptExtensionsCodec struct{}

func (ScriptExtensionsCodec) FileName() string        { return "ScriptExtensions.txt" }
func (ScriptExtensionsCodec) PropertyNames() []string { return []string{"Script_Extensions"} }

var scriptExtSplit = regexp.MustCompile(`\s+`)

func (ScriptExtensionsCodec) Compile(t *puaa.Table, r io.Reader) error {
	byScript := make(map[string]map[int]string)
	var scriptOrder []string
	err := eachLine(r, func(fields []string) {
		if len(fields) < 2 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		for _, s := range scriptExtSplit.Split(trim(fields[1]), -1) {
			if s == "" {
				continue
			}
			m, ok := byScript[s]
			if !ok {
				m = make(map[int]string)
				byScript[s] = m
				scriptOrder = append(scriptOrder, s)
			}
			for cp := fcp; cp <= lcp; cp++ {
				m[cp] = s
			}
		}
	})
	if err != nil {
		return err
	}
	sort.Strings(scriptOrder)
	st := t.Subtable("Script_Extensions", true)
	for _, s := range scriptOrder {
		st.Entries = append(st.Entries, puaa.EntriesFromStringMap(byScript[s])...)
	}
	return nil
}

func (ScriptExtensionsCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Script_Extensions", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	byCP := make(map[int][]string)
	for _, e := range st.Entries {
		for cp := e.FirstCodePoint(); cp <= e.LastCodePoint(); cp++ {
			v, ok := e.PropertyValue(cp)
			if !ok || v == "" {
				continue
			}
			byCP[cp] = append(byCP[cp], scriptExtSplit.Split(strings.TrimSpace(v), -1)...)
		}
	}
	merged := make(map[int]string, len(byCP))
	for cp, scripts := range byCP {
		sort.Strings(scripts)
		merged[cp] = strings.Join(scripts, " ")
	}
	runs := puaa.RunsFromEntries(puaa.EntriesFromStringMap(merged))
	sort.Slice(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if len(a.Value) != len(b.Value) {
			return len(a.Value) < len(b.Value)
		}
		al, bl := strings.ToLower(a.Value), strings.ToLower(b.Value)
		if al != bl {
			return al < bl
		}
		if a.FirstCodePoint() != b.FirstCodePoint() {
			return a.FirstCodePoint() < b.FirstCodePoint()
		}
		return a.LastCodePoint() < b.LastCodePoint()
	})
	for _, run := range runs {
		if _, err := fmt.Fprintf(w, "%-14s; %s\n", joinRange(run.FirstCodePoint(), run.LastCodePoint()), run.Value); err != nil {
			return err
		}
	}
	return nil
}
