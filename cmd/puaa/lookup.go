package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

var codePointPrefix = regexp.MustCompile(`[Uu][+]|[0][Xx]|\s`)

// parseCodePoint accepts either a single literal character or a
// U+XXXX/0xXXXX-style hex string, mirroring pypuaa.py's
// parseCodePoint.
func parseCodePoint(s string) (int, error) {
	r := []rune(s)
	if len(r) == 1 {
		return int(r[0]), nil
	}
	cleaned := codePointPrefix.ReplaceAllString(s, "")
	cp, err := strconv.ParseInt(cleaned, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point: %s", s)
	}
	return int(cp), nil
}

func formatRange(first, last int) string {
	if first == last {
		return fmt.Sprintf("%04X", first)
	}
	return fmt.Sprintf("%04X..%04X", first, last)
}

func cmdLookup(args []string) int {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)
	var inputFiles, properties, codePointArgs stringList
	fs.Var(&inputFiles, "i", "source font to read (repeatable)")
	fs.Var(&properties, "p", "property name to look up (repeatable)")
	fs.Var(&codePointArgs, "c", "code point to look up (repeatable)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: puaa lookup -i <path> [-p <prop> ...] [-c <cp> ...] [codepoint ...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Looks up Unicode Character Database properties in a TrueType/OpenType file.")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if len(inputFiles) == 0 {
		fmt.Fprintln(os.Stderr, "puaa lookup: no input files specified")
		fs.Usage()
		return 1
	}

	var tables []*puaa.Subtable
	for _, path := range inputFiles {
		table, err := readPUAATable(path, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "puaa lookup: %v\n", err)
			return 1
		}
		if table != nil {
			tables = append(tables, table.Subtables...)
		}
	}
	if len(tables) == 0 {
		fmt.Println("No tables found.")
		return 1
	}

	var codePoints []int
	for _, s := range codePointArgs {
		cp, err := parseCodePoint(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		codePoints = append(codePoints, cp)
	}
	for _, s := range fs.Args() {
		cp, err := parseCodePoint(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		codePoints = append(codePoints, cp)
	}

	wanted := make([]string, len(properties))
	for i, p := range properties {
		wanted[i] = strings.ToLower(strings.TrimSpace(p))
	}
	matches := func(name string) bool {
		if len(wanted) == 0 {
			return true
		}
		name = strings.ToLower(name)
		for _, w := range wanted {
			if w == name {
				return true
			}
		}
		return false
	}

	if len(codePoints) == 0 {
		if len(wanted) == 0 {
			fmt.Println("Properties:")
			for _, t := range tables {
				fmt.Printf("  %s\n", t.PropertyName)
			}
			return 0
		}
		for _, t := range tables {
			if !matches(t.PropertyName) {
				continue
			}
			fmt.Printf("%s:\n", t.PropertyName)
			for _, run := range puaa.RunsFromEntries(t.Entries) {
				label := formatRange(run.FirstCodePoint(), run.LastCodePoint()) + ":"
				fmt.Printf("  %-16s%s\n", label, run.Value)
			}
		}
		return 0
	}

	width := 0
	for _, t := range tables {
		if matches(t.PropertyName) && len(t.PropertyName) > width {
			width = len(t.PropertyName)
		}
	}
	format := fmt.Sprintf("  %%-%ds%%s\n", width+2)
	for _, cp := range codePoints {
		fmt.Printf("U+%04X:\n", cp)
		for _, t := range tables {
			if !matches(t.PropertyName) {
				continue
			}
			if v, ok := t.PropertyValue(cp); ok {
				fmt.Printf(format, t.PropertyName+":", v)
			}
		}
	}
	return 0
}
