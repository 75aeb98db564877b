package ucdmerge

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFragment(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessFileIncludesForcedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@flag extra\n0000..007F; Basic Latin\n")

	p := NewParser(nil, "")
	if err := p.ProcessFile(path, true); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(p.BlockLines()) != 1 {
		t.Fatalf("expected 1 block line, got %d", len(p.BlockLines()))
	}
}

func TestProcessFileSkipsUnmatchedFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@flag extra\n0000..007F; Basic Latin\n")

	p := NewParser([]string{"other"}, "")
	if err := p.ProcessFile(path, false); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(p.BlockLines()) != 0 {
		t.Fatalf("expected no block lines, got %d", len(p.BlockLines()))
	}
}

func TestProcessFileNoFlagExcludes(t *testing.T) {
	dir := t.TempDir()
	path := writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@flag extra\n0000..007F; Basic Latin\n")

	p := NewParser([]string{"extra", "no-extra"}, "")
	if err := p.ProcessFile(path, false); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(p.BlockLines()) != 0 {
		t.Fatalf("expected no block lines when no-<flag> is also active, got %d", len(p.BlockLines()))
	}
}

func TestProcessFileSubstringMatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@substring widget\n0000..007F; Basic Latin\n")

	p := NewParser(nil, "my widget font")
	if err := p.ProcessFile(path, false); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if len(p.BlockLines()) != 1 {
		t.Fatalf("expected 1 block line, got %d", len(p.BlockLines()))
	}
}

func TestProcessFileOverlappingBlocksIsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@flag x\n0000..007F; Basic Latin\n0040..0050; Overlap\n")

	p := NewParser([]string{"x"}, "")
	err := p.ProcessFile(path, false)
	if err == nil {
		t.Fatal("expected an overlap error")
	}
	if _, ok := err.(*ErrOverlap); !ok {
		t.Errorf("expected *ErrOverlap, got %T: %v", err, err)
	}
}

func TestProcessFileOverlappingUnicodeDataIsError(t *testing.T) {
	dir := t.TempDir()
	path := writeFragment(t, dir, "a.txt",
		"@file UnicodeData.txt\n@flag x\n0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;;\n0041;DUPLICATE;Lu;0;L;;;;;N;;;;;\n")

	p := NewParser([]string{"x"}, "")
	err := p.ProcessFile(path, false)
	if err == nil {
		t.Fatal("expected an overlap error")
	}
}

func TestProcessFileAccumulatesOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFragment(t, dir, "a.txt", "@file Jamo.txt\n@flag x\n1100; G\n1101; GG\n")

	p := NewParser([]string{"x"}, "")
	if err := p.ProcessFile(path, false); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	lines := p.FileLines("Jamo.txt")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
}

func TestScanDirMergesMultipleFragmentsDeterministically(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@flag x\n0000..007F; Basic Latin\n")
	writeFragment(t, dir, "b.txt", "@file Blocks.txt\n@flag x\n0080..00FF; Latin-1 Supplement\n")
	writeFragment(t, dir, "c.txt", "@file Blocks.txt\n@flag y\n0100..017F; Latin Extended-A\n")

	p := NewParser([]string{"x"}, "")
	if err := p.ScanDir(context.Background(), dir); err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	lines := p.BlockLines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 matched block lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "0000..007F; Basic Latin" {
		t.Errorf("expected blocks sorted by start, got %v", lines)
	}
}

func TestScanDirDetectsOverlapAcrossFragments(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@flag x\n0000..007F; Basic Latin\n")
	writeFragment(t, dir, "b.txt", "@file Blocks.txt\n@flag x\n0040..0050; Overlap\n")

	p := NewParser([]string{"x"}, "")
	if err := p.ScanDir(context.Background(), dir); err == nil {
		t.Fatal("expected an overlap error across fragments")
	}
}

func TestMatchedFilesTracksIncludedFragments(t *testing.T) {
	dir := t.TempDir()
	writeFragment(t, dir, "a.txt", "@file Blocks.txt\n@flag x\n0000..007F; Basic Latin\n")
	writeFragment(t, dir, "b.txt", "@file Blocks.txt\n@flag y\n0100..017F; Latin Extended-A\n")

	p := NewParser([]string{"x"}, "")
	if err := p.ScanDir(context.Background(), dir); err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	matched := p.MatchedFiles()
	if len(matched) != 1 {
		t.Fatalf("expected 1 matched file, got %d: %v", len(matched), matched)
	}
	if filepath.Base(matched[0].Path) != "a.txt" {
		t.Errorf("expected a.txt matched, got %v", matched)
	}
}
