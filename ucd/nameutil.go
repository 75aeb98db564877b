package ucd

import (
	"regexp"
	"sort"
	"unicode/utf16"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// splitName breaks a Unicode character name into the same word-ish
// fragments pypuaa.py's splitName regex produces: each fragment is a
// maximal run of "name" characters (word chars and the handful of
// punctuation marks UCD names use) followed by any run of other
// non-space characters and any trailing spaces. This fragmentation is what lets
// entriesFromNameMap factor out a shared prefix or suffix word from a
// run of adjacent code points.
var splitNameRe = regexp.MustCompile(`[\w"#$%&'()*<>@\[\]_{}]*[^\s\w"#$%&'()*<>@\[\]_{}]*\s*`)

func splitName(s string) []string {
	all := splitNameRe.FindAllString(s, -1)
	out := all[:0]
	for _, p := range all {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

type nameMapItem struct {
	cp     int
	pieces []string
}

func sortedNameMap(m map[int]string) []nameMapItem {
	items := make([]nameMapItem, 0, len(m))
	for cp, v := range m {
		if v == "" {
			continue
		}
		items = append(items, nameMapItem{cp, splitName(v)})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].cp < items[j].cp })
	return items
}

// entriesFromNameMap builds the entry list for a property whose
// values are Unicode character names: it factors out runs of
// code points sharing a common leading word (a "prefix entry") and a
// common trailing word (a "suffix entry"), repeating until no more
// shared words remain, then stores whatever is left of each name —
// split at the UTF-16 midpoint if it exceeds 255 UTF-8 bytes, to stay
// under the binary format's one-byte pool length prefix — as ordinary
// string-map entries. Names like "CJK UNIFIED IDEOGRAPH-4E00" compress
// far better this way than as one SingleEntry per code point.
func entriesFromNameMap(m map[int]string) []puaa.Entry {
	items := sortedNameMap(m)

	var prefixes []puaa.Entry
	for {
		var newPrefixes []puaa.Entry
		o, i, n := 0, 0, len(items)
		for o < n {
			first := items[i]
			i++
			if len(first.pieces) > 0 {
				entry := puaa.NewSingleEntry(first.cp, first.cp, first.pieces[0])
				for i < n && len(items[i].pieces) > 0 && puaa.AppendToEntry(entry, items[i].cp, items[i].pieces[0]) {
					i++
				}
				if entry.FirstCodePoint() != entry.LastCodePoint() {
					newPrefixes = append(newPrefixes, entry)
					for o < i {
						items[o].pieces = items[o].pieces[1:]
						o++
					}
				}
			}
			o = i
		}
		if len(newPrefixes) == 0 {
			break
		}
		prefixes = append(prefixes, newPrefixes...)
	}

	var suffixes []puaa.Entry
	for {
		var newSuffixes []puaa.Entry
		o, i, n := 0, 0, len(items)
		for o < n {
			first := items[i]
			i++
			if len(first.pieces) > 0 {
				last := first.pieces[len(first.pieces)-1]
				entry := puaa.NewSingleEntry(first.cp, first.cp, last)
				for i < n && len(items[i].pieces) > 0 &&
					puaa.AppendToEntry(entry, items[i].cp, items[i].pieces[len(items[i].pieces)-1]) {
					i++
				}
				if entry.FirstCodePoint() != entry.LastCodePoint() {
					newSuffixes = append(newSuffixes, entry)
					for o < i {
						p := items[o].pieces
						items[o].pieces = p[:len(p)-1]
						o++
					}
				}
			}
			o = i
		}
		if len(newSuffixes) == 0 {
			break
		}
		suffixes = append(newSuffixes, suffixes...)
	}

	remainder1 := make(map[int]string)
	remainder2 := make(map[int]string)
	for _, item := range items {
		if len(item.pieces) == 0 {
			continue
		}
		value := ""
		for _, p := range item.pieces {
			value += p
		}
		if len(value) > 255 {
			head, tail := splitUTF16Safe(value)
			remainder1[item.cp] = head
			remainder2[item.cp] = tail
		} else {
			remainder1[item.cp] = value
		}
	}

	entries := append([]puaa.Entry(nil), prefixes...)
	entries = append(entries, puaa.EntriesFromStringMap(remainder1)...)
	entries = append(entries, puaa.EntriesFromStringMap(remainder2)...)
	entries = append(entries, suffixes...)
	return entries
}

// splitUTF16Safe splits value at its UTF-16 code-unit midpoint,
// nudging the cut point forward by one unit if it would otherwise
// land inside a surrogate pair — matching the Java reference
// implementation's split point so both tools produce the same
// decomposition for names longer than 255 UTF-8 bytes.
func splitUTF16Safe(value string) (head, tail string) {
	units := utf16.Encode([]rune(value))
	h := len(units) / 2
	if h < len(units) && units[h] >= 0xDC00 && units[h] <= 0xDFFF {
		// units[h] is the low half of a surrogate pair whose high half
		// is units[h-1]; push the cut past it so the pair stays whole.
		h++
	}
	return string(utf16.Decode(units[:h])), string(utf16.Decode(units[h:]))
}
