// Package ucd implements one codec per Unicode Character Database text
// file family, translating between UCD's semicolon-delimited line
// format and puaa.Entry runs.
package ucd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// splitLine strips a line's trailing comment and surrounding
// whitespace and splits it on ';'. It reports ok=false for a blank or
// comment-only line.
func splitLine(line string) (fields []string, ok bool) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, false
	}
	return strings.Split(line, ";"), true
}

var rangeSep = regexp.MustCompile(`[.]+`)

// splitRange parses a UCD code point range field: either a single
// hex code point, or "XXXX..YYYY".
func splitRange(s string) (first, last int, err error) {
	parts := rangeSep.Split(strings.TrimSpace(s), -1)
	first64, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 16, 32)
	if err != nil {
		return 0, 0, err
	}
	if len(parts) < 2 {
		return int(first64), int(first64), nil
	}
	last64, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 16, 32)
	if err != nil {
		return 0, 0, err
	}
	return int(first64), int(last64), nil
}

// trim is strings.TrimSpace, exposed under a short name used
// throughout the per-codec field-parsing code.
func trim(s string) string { return strings.TrimSpace(s) }

// joinRange formats a code point or range the way UCD text files do.
func joinRange(first, last int) string {
	if first == last {
		return fmt.Sprintf("%04X", first)
	}
	return fmt.Sprintf("%04X..%04X", first, last)
}

var naturalSortRe = regexp.MustCompile(`([0-9]+)`)

// naturalSortKey splits s into a slice of alternating non-digit and
// numeric-valued tokens, usable as a natural-order sort key (so that
// "V9_0" sorts before "V10_0").
func naturalSortKey(s string) []any {
	parts := naturalSortRe.Split(s, -1)
	nums := naturalSortRe.FindAllString(s, -1)
	key := make([]any, 0, len(parts)+len(nums))
	for i, p := range parts {
		if p != "" {
			key = append(key, strings.ToLower(p))
		}
		if i < len(nums) {
			n, err := strconv.Atoi(nums[i])
			if err == nil {
				key = append(key, n)
			}
		}
	}
	return key
}

// compareNaturalKeys compares two naturalSortKey results the way
// Python's list comparison does: element-wise, a string is always
// greater than an int (Python 2 semantics this tool relies on), and a
// shorter, wholly-matching prefix sorts first.
func compareNaturalKeys(a, b []any) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		av, aIsInt := a[i].(int)
		bv, bIsInt := b[i].(int)
		switch {
		case aIsInt && bIsInt:
			if av != bv {
				if av < bv {
					return -1
				}
				return 1
			}
		case !aIsInt && !bIsInt:
			as, bs := a[i].(string), b[i].(string)
			if as != bs {
				if as < bs {
					return -1
				}
				return 1
			}
		default:
			if aIsInt {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}
