package ucd

import (
	"strings"
	"testing"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

func TestArabicShapingCodecRoundTrip(t *testing.T) {
	table := puaa.New()
	names := table.Subtable("Name", true)
	names.Entries = append(names.Entries, puaa.NewSingleEntry(0x0621, 0x0621, "ARABIC LETTER HAMZA"))

	input := "0621; HAMZA; U; No_Joining_Group\n"
	var c ArabicShapingCodec
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	want := "0621; ARABIC LETTER HAMZA; U; No_Joining_Group\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
