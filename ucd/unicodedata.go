package ucd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// UnicodeDataCodec handles UnicodeData.txt, the 14-column master file.
// Its Decomposition_Mapping column packs a leading "<Type>" tag
// together with the hex mapping words in one field, so compile must
// split word-by-word into a type string and a hex sequence, and
// Numeric_Type/Numeric_Value are derived from whichever of the
// Decimal_Digit_Value/Digit_Value/Numeric_Value columns is non-empty.
// Grounded on pypuaa.py's UnicodeDataCodec, whose column order and
// join semantics are followed exactly.
type UnicodeDataCodec struct{}

func (UnicodeDataCodec) FileName() string { return "UnicodeData.txt" }
func (UnicodeDataCodec) PropertyNames() []string {
	return []string{
		"Name", "General_Category", "Canonical_Combining_Class",
		"Bidi_Class", "Decomposition_Type", "Decomposition_Mapping",
		"Numeric_Type", "Numeric_Value", "Bidi_Mirrored",
		"Unicode_1_Name", "ISO_Comment", "Simple_Uppercase_Mapping",
		"Simple_Lowercase_Mapping", "Simple_Titlecase_Mapping",
	}
}

func (UnicodeDataCodec) Compile(t *puaa.Table, r io.Reader) error {
	names := make(map[int]string)
	categories := make(map[int]string)
	combClasses := make(map[int]int32)
	bidiClasses := make(map[int]string)
	decompTypes := make(map[int]string)
	decompMappings := make(map[int][]uint32)
	numericTypes := make(map[int]string)
	numericValues := make(map[int]string)
	bidiMirrored := make(map[int]bool)
	uni1Names := make(map[int]string)
	comments := make(map[int]string)
	uppercase := make(map[int]uint32)
	lowercase := make(map[int]uint32)
	titlecase := make(map[int]uint32)

	err := eachLine(r, func(fields []string) {
		if len(fields) < 12 {
			return
		}
		cp64, err := strconv.ParseInt(trim(fields[0]), 16, 32)
		if err != nil {
			return
		}
		cp := int(cp64)
		if v := trim(fields[1]); v != "" {
			names[cp] = v
		}
		if v := trim(fields[2]); v != "" {
			categories[cp] = v
		}
		if n, err := strconv.ParseInt(trim(fields[3]), 10, 32); err == nil {
			combClasses[cp] = int32(n)
		}
		if v := trim(fields[4]); v != "" {
			bidiClasses[cp] = v
		}
		if v := trim(fields[5]); v != "" {
			var types []string
			var mappings []uint32
			for _, word := range hexWordSplit.Split(v, -1) {
				if n, err := strconv.ParseUint(word, 16, 32); err == nil {
					mappings = append(mappings, uint32(n))
				} else {
					types = append(types, word)
				}
			}
			if len(types) > 0 {
				decompTypes[cp] = strings.Join(types, " ")
			}
			if len(mappings) > 0 {
				decompMappings[cp] = mappings
			}
		}
		switch {
		case trim(fields[6]) != "":
			numericTypes[cp] = "Decimal"
			numericValues[cp] = trim(fields[6])
		case trim(fields[7]) != "":
			numericTypes[cp] = "Digit"
			numericValues[cp] = trim(fields[7])
		case trim(fields[8]) != "":
			numericTypes[cp] = "Numeric"
			numericValues[cp] = trim(fields[8])
		}
		if v := trim(fields[9]); v != "" {
			bidiMirrored[cp] = v == "Y"
		}
		if v := trim(fields[10]); v != "" {
			uni1Names[cp] = v
		}
		if v := trim(fields[11]); v != "" {
			comments[cp] = v
		}
		if len(fields) > 12 {
			if n, err := strconv.ParseUint(trim(fields[12]), 16, 32); err == nil {
				uppercase[cp] = uint32(n)
			}
		}
		if len(fields) > 13 {
			if n, err := strconv.ParseUint(trim(fields[13]), 16, 32); err == nil {
				lowercase[cp] = uint32(n)
			}
		}
		if len(fields) > 14 {
			if n, err := strconv.ParseUint(trim(fields[14]), 16, 32); err == nil {
				titlecase[cp] = uint32(n)
			}
		}
	})
	if err != nil {
		return err
	}

	add := func(propertyName string, entries []puaa.Entry) {
		st := t.Subtable(propertyName, true)
		st.Entries = append(st.Entries, entries...)
	}
	add("Name", entriesFromNameMap(names))
	add("General_Category", puaa.EntriesFromStringMap(categories))
	add("Canonical_Combining_Class", puaa.EntriesFromDecimalMap(combClasses))
	add("Bidi_Class", puaa.EntriesFromStringMap(bidiClasses))
	add("Decomposition_Type", puaa.EntriesFromStringMap(decompTypes))
	add("Decomposition_Mapping", puaa.EntriesFromHexSequenceMap(decompMappings))
	add("Numeric_Type", puaa.EntriesFromStringMap(numericTypes))
	add("Numeric_Value", puaa.EntriesFromStringMap(numericValues))
	add("Bidi_Mirrored", puaa.EntriesFromBooleanMap(bidiMirrored))
	add("Unicode_1_Name", entriesFromNameMap(uni1Names))
	add("ISO_Comment", puaa.EntriesFromStringMap(comments))
	add("Simple_Uppercase_Mapping", puaa.EntriesFromHexadecimalMap(uppercase))
	add("Simple_Lowercase_Mapping", puaa.EntriesFromHexadecimalMap(lowercase))
	add("Simple_Titlecase_Mapping", puaa.EntriesFromHexadecimalMap(titlecase))
	return nil
}

// unicodeDataLine holds the 15 columns of one UnicodeData.txt line
// being reassembled from several subtables during Decompile.
type unicodeDataLine struct {
	fields [15]string
	set    [15]bool
}

func (UnicodeDataCodec) Decompile(t *puaa.Table, w io.Writer) error {
	lines := make(map[int]*unicodeDataLine)

	addLines := func(propertyName string, col int) {
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
				line, ok := lines[cp]
				if !ok {
					line = &unicodeDataLine{}
					line.fields[0] = fmt.Sprintf("%04X", cp)
					line.set[0] = true
					lines[cp] = line
				}
				if !line.set[col] {
					line.fields[col] = value
					line.set[col] = true
					continue
				}
				switch col {
				case 8:
					switch line.fields[col] {
					case "Decimal":
						line.fields[6], line.set[6] = value, true
						line.fields[7], line.set[7] = value, true
						line.fields[8] = value
					case "Digit":
						line.fields[7], line.set[7] = value, true
						line.fields[8] = value
					case "Numeric":
						line.fields[8] = value
					}
				case 5:
					line.fields[col] += " " + value
				default:
					line.fields[col] += value
				}
			}
		}
	}

	addLines("Name", 1)
	addLines("General_Category", 2)
	addLines("Canonical_Combining_Class", 3)
	addLines("Bidi_Class", 4)
	addLines("Decomposition_Type", 5)
	addLines("Decomposition_Mapping", 5)
	addLines("Numeric_Type", 8)
	addLines("Numeric_Value", 8)
	addLines("Bidi_Mirrored", 9)
	addLines("Unicode_1_Name", 10)
	addLines("ISO_Comment", 11)
	addLines("Simple_Uppercase_Mapping", 12)
	addLines("Simple_Lowercase_Mapping", 13)
	addLines("Simple_Titlecase_Mapping", 14)

	cps := make([]int, 0, len(lines))
	for cp := range lines {
		cps = append(cps, cp)
	}
	sort.Ints(cps)
	for _, cp := range cps {
		line := lines[cp]
		parts := make([]string, 15)
		copy(parts[:], line.fields[:])
		if _, err := fmt.Fprintf(w, "%s\n", strings.Join(parts, ";")); err != nil {
			return err
		}
	}
	return nil
}
