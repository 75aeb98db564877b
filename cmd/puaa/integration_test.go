package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kreativekorp/openrelay-tools/puaa"
	"github.com/kreativekorp/openrelay-tools/sfnt"
	"github.com/kreativekorp/openrelay-tools/ucd"
)

func TestCompileWritePUAAThenDecompileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	blocksPath := filepath.Join(dir, "Blocks.txt")
	const blocksLine = "F1900..F19FF; Sitelen Pona\n"
	if err := os.WriteFile(blocksPath, []byte(blocksLine), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := ucd.NewRegistry()
	table, err := compileUCD(reg, []string{blocksPath}, false)
	if err != nil {
		t.Fatalf("compileUCD: %v", err)
	}
	if v, ok := table.PropertyValue("Block", 0xF1900); !ok || v != "Sitelen Pona" {
		t.Fatalf("unexpected Block value: %q, %v", v, ok)
	}

	fontPath := filepath.Join(dir, "out.ttf")
	if err := writePUAAFont("", table, fontPath, false); err != nil {
		t.Fatalf("writePUAAFont: %v", err)
	}

	table2, err := readPUAATable(fontPath, false)
	if err != nil {
		t.Fatalf("readPUAATable: %v", err)
	}
	if table2 == nil {
		t.Fatal("expected a PUAA table")
	}
	if v, ok := table2.PropertyValue("Block", 0xF1900); !ok || v != "Sitelen Pona" {
		t.Fatalf("unexpected Block value after round trip: %q, %v", v, ok)
	}

	outDir := filepath.Join(dir, "decompiled")
	if err := decompileUCD(reg, table2, outDir, false); err != nil {
		t.Fatalf("decompileUCD: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(outDir, "Blocks.txt"))
	if err != nil {
		t.Fatalf("reading decompiled Blocks.txt: %v", err)
	}
	if string(got) != blocksLine {
		t.Errorf("got %q, want %q", got, blocksLine)
	}
}

func TestStripRemovesPUAATable(t *testing.T) {
	dir := t.TempDir()
	table := puaa.New()
	st := table.Subtable("Block", true)
	st.Entries = append(st.Entries, puaa.NewSingleEntry(0x41, 0x41, "Test"))

	fontPath := filepath.Join(dir, "in.ttf")
	if err := writePUAAFont("", table, fontPath, false); err != nil {
		t.Fatalf("writePUAAFont: %v", err)
	}

	strippedPath := filepath.Join(dir, "out.ttf")
	if err := writePUAAFont(fontPath, nil, strippedPath, false); err != nil {
		t.Fatalf("writePUAAFont (strip): %v", err)
	}

	data, err := os.ReadFile(strippedPath)
	if err != nil {
		t.Fatal(err)
	}
	c, err := sfnt.Read(data)
	if err != nil {
		t.Fatalf("sfnt.Read: %v", err)
	}
	if c.Has(sfnt.TagPUAA) {
		t.Error("expected PUAA table to be stripped")
	}
}

func TestParseCodePoint(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"A", 0x41},
		{"U+0041", 0x41},
		{"0x41", 0x41},
		{"u+F1900", 0xF1900},
	}
	for _, c := range cases {
		got, err := parseCodePoint(c.in)
		if err != nil {
			t.Errorf("parseCodePoint(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseCodePoint(%q) = %#x, want %#x", c.in, got, c.want)
		}
	}
}

func TestParseCodePointInvalid(t *testing.T) {
	if _, err := parseCodePoint("not a code point"); err == nil {
		t.Error("expected an error for an invalid code point string")
	}
}

func TestFormatRange(t *testing.T) {
	if got := formatRange(0x41, 0x41); got != "0041" {
		t.Errorf("formatRange(single) = %q", got)
	}
	if got := formatRange(0xF1900, 0xF19FF); got != "F1900..F19FF" {
		t.Errorf("formatRange(range) = %q", got)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if code := run([]string{"bogus"}); code != 1 {
		t.Errorf("run(bogus) = %d, want 1", code)
	}
}

func TestRunHelp(t *testing.T) {
	if code := run([]string{"help"}); code != 0 {
		t.Errorf("run(help) = %d, want 0", code)
	}
}

func TestStringListAccumulates(t *testing.T) {
	var l stringList
	_ = l.Set("a")
	_ = l.Set("b")
	if strings.Join(l, ",") != "a,b" {
		t.Errorf("got %v", l)
	}
}
