package ucd

import (
	"fmt"
	"io"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// NameAliasesCodec handles NameAliases.txt: "range; alias; aliasType",
// stored as NameAliasEntry (never run-merged, since two adjacent code
// points never share an alias). Grounded on pypuaa.py's
// NameAliasesCodec.
type NameAliasesCodec struct{}

func (NameAliasesCodec) FileName() string        { return "NameAliases.txt" }
func (NameAliasesCodec) PropertyNames() []string { return []string{"Name_Alias"} }

func (NameAliasesCodec) Compile(t *puaa.Table, r io.Reader) error {
	st := t.Subtable("Name_Alias", true)
	return eachLine(r, func(fields []string) {
		if len(fields) < 3 {
			return
		}
		fcp, lcp, err := splitRange(fields[0])
		if err != nil {
			return
		}
		st.Entries = append(st.Entries, puaa.NewNameAliasEntry(fcp, lcp, trim(fields[1]), trim(fields[2])))
	})
}

func (NameAliasesCodec) Decompile(t *puaa.Table, w io.Writer) error {
	st := t.Subtable("Name_Alias", false)
	if st == nil || len(st.Entries) == 0 {
		return nil
	}
	for _, e := range st.Entries {
		for cp := e.FirstCodePoint(); cp <= e.LastCodePoint(); cp++ {
			v, _ := e.PropertyValue(cp)
			if _, err := fmt.Fprintf(w, "%04X;%s\n", cp, v); err != nil {
				return err
			}
		}
	}
	return nil
}
