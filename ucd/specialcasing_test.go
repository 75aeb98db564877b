package ucd

import (
	"strings"
	"testing"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

func TestSpecialCasingCodecRoundTripNoCondition(t *testing.T) {
	input := "00DF; 00DF; 0053 0073; 0053 0053;\n"
	table := puaa.New()
	var c SpecialCasingCodec
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

func TestSpecialCasingCodecRoundTripWithCondition(t *testing.T) {
	input := "0130; 0069 0307; 0130; 0130; tr After_Soft_Dotted;\n"
	table := puaa.New()
	var c SpecialCasingCodec
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
