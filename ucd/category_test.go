package ucd

import (
	"strings"
	"testing"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

func TestCategoryCodecOrdersByDeclaredEnum(t *testing.T) {
	input := "0041..0042; LF\n0043; CR\n0044; LF\n"
	c := NewCategoryCodec("Test.txt", "Test_Break", []string{"CR", "LF"})
	table := puaa.New()
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 ordered lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "CR") || !strings.Contains(lines[1], "LF") || !strings.Contains(lines[2], "LF") {
		t.Errorf("expected CR before LF (enum order), got %q", lines)
	}
}

func TestCategoryCodecRoundTripSingleValue(t *testing.T) {
	input := "0041..005A; ALetter\n"
	c := NewCategoryCodec("Test.txt", "Test_Break", []string{"ALetter"})
	table := puaa.New()
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	want := "0041..005A    ; ALetter\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
