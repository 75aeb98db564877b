package ucd

import (
	"strings"
	"testing"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

func TestBlocksCodecRoundTrip(t *testing.T) {
	input := "0000..007F; Basic Latin\n0080..00FF; Latin-1 Supplement\n"
	table := puaa.New()
	var c BlocksCodec
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}

	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	if buf.String() != input {
		t.Errorf("round trip mismatch:\ngot:  %q\nwant: %q", buf.String(), input)
	}
}

func TestBlocksCodecPreservesFileOrder(t *testing.T) {
	// Blocks.txt is not sorted by code point once updated in place; the
	// codec must never resort it.
	input := "0080..00FF; Latin-1 Supplement\n0000..007F; Basic Latin\n"
	table := puaa.New()
	var c BlocksCodec
	if err := c.Compile(table, strings.NewReader(input)); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	var buf strings.Builder
	if err := c.Decompile(table, &buf); err != nil {
		t.Fatalf("Decompile: %v", err)
	}
	if buf.String() != input {
		t.Errorf("got %q, want %q (order must be preserved)", buf.String(), input)
	}
}
