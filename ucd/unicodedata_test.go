package ucd

import (
	"strings"
	"testing"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

func TestUnicodeDataCodecRoundTripPlainLetter(t *testing.T) {
	fields := []string{
		"0041", "LATIN CAPITAL LETTER A", "Lu", "0", "L",
		"", "", "", "", "N", "", "", "", "", "",
	}
	input := strings.Join(fields, ";") + "\n"

	table := puaa.New()
	var c UnicodeDataCodec
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	if buf.String() != input {
		t.Errorf("got %q, want %q", buf.String(), input)
	}
}

func TestUnicodeDataCodecNumericTypeCascade(t *testing.T) {
	// A Decimal_Digit_Value must also fill Digit_Value and Numeric_Value
	// on decompile, even though only column 6 was set on compile.
	fields := []string{
		"0030", "DIGIT ZERO", "Nd", "0", "EN",
		"", "0", "0", "0", "N", "", "", "", "", "",
	}
	input := strings.Join(fields, ";") + "\n"

	table := puaa.New()
	var c UnicodeDataCodec
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	if buf.String() != input {
		t.Errorf("got %q, want %q", buf.String(), input)
	}
}

func TestUnicodeDataCodecDecompositionMappingWithType(t *testing.T) {
	fields := []string{
		"00BD", "VULGAR FRACTION ONE HALF", "No", "0", "ON",
		"<fraction> 0031 2044 0032", "", "", "1/2", "N", "", "", "", "", "",
	}
	input := strings.Join(fields, ";") + "\n"

	table := puaa.New()
	var c UnicodeDataCodec
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	if buf.String() != input {
		t.Errorf("got %q, want %q", buf.String(), input)
	}
}
