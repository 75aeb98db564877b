// Package ucdmerge assembles UCD source text (Blocks.txt,
// UnicodeData.txt, and every other recognized UCD file) out of a
// directory of fragment files, each tagged with @file/@flag/@substring
// control lines, the same selection scheme as udparser.py.
package ucdmerge

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kreativekorp/openrelay-tools/bitset"
)

// ErrOverlap reports that two fragments claimed the same code point in
// Blocks.txt or UnicodeData.txt.
type ErrOverlap struct {
	FileName string
	Line     string
}

func (e *ErrOverlap) Error() string {
	return fmt.Sprintf("%s: overlapping data: %s", e.FileName, e.Line)
}

// MatchedFile records which fragment file contributed data and why it
// was selected.
type MatchedFile struct {
	Path       string
	Flags      []string
	Substrings []string
}

// Parser accumulates UCD fragment files into merged per-file line
// lists, the way udparser.py's DataParser does.
type Parser struct {
	Flags       []string
	Superstring string

	matchedFiles []MatchedFile
	blockBits    *bitset.Set
	charBits     *bitset.Set
	blockLines   []string
	charLines    []string
	fileLines    map[string][]string
}

// NewParser returns a Parser selecting fragments whose @flag is in
// flags (and whose @flag does not have a matching "no-<flag>" in
// flags) or whose @substring is contained in superstring.
func NewParser(flags []string, superstring string) *Parser {
	return &Parser{
		Flags:       flags,
		Superstring: superstring,
		blockBits:   bitset.New(),
		charBits:    bitset.New(),
		fileLines:   make(map[string][]string),
	}
}

var controlFields = regexp.MustCompile(`\s+`)

// fragment holds one file's parsed contents before it is merged into
// the Parser's shared state. Parsing a fragment touches no shared
// state, so many fragments can be parsed concurrently; only the merge
// step (mergeFragment) must run single-threaded.
type fragment struct {
	path       string
	included   bool
	flags      []string
	substrings []string
	blockLines []string
	charLines  []string
	otherLines map[string][]string
}

var leadingDashes = regexp.MustCompile(`^(-*)`)

func hasNoFlagFor(flags []string, flag string) bool {
	noFlag := leadingDashes.ReplaceAllString(flag, "${1}no-")
	for _, f := range flags {
		if f == noFlag {
			return true
		}
	}
	return false
}

// parseFile reads path and classifies its lines, deciding inclusion
// from forced (the file was named explicitly on the command line) or
// from the @flag/@substring control lines encountered in the file
// itself.
func (p *Parser) parseFile(path string, forced bool) (*fragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frag := &fragment{path: path, otherLines: make(map[string][]string)}
	var fileName string
	matchesFlag, matchesNoFlag, matchesSubstring := false, false, false

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '@' {
			fields := controlFields.Split(line, -1)
			switch fields[0] {
			case "@flag":
				frag.flags = append(frag.flags, fields[1])
				if contains(p.Flags, fields[1]) {
					matchesFlag = true
				}
				if hasNoFlagFor(p.Flags, fields[1]) {
					matchesNoFlag = true
				}
			case "@substring":
				frag.substrings = append(frag.substrings, fields[1])
				if strings.Contains(p.Superstring, fields[1]) {
					matchesSubstring = true
				}
			case "@file":
				fileName = fields[1]
			}
			continue
		}
		if !(forced || ((matchesFlag || matchesSubstring) && !matchesNoFlag)) {
			continue
		}
		switch fileName {
		case "Blocks.txt":
			frag.blockLines = append(frag.blockLines, line)
		case "UnicodeData.txt":
			frag.charLines = append(frag.charLines, line)
		case "":
			// no @file control line seen yet; nothing to attribute the line to.
		default:
			frag.otherLines[fileName] = append(frag.otherLines[fileName], line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	frag.included = forced || ((matchesFlag || matchesSubstring) && !matchesNoFlag)
	return frag, nil
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

var blockRangeFields = regexp.MustCompile(`[.]+|;`)

// mergeFragment folds one parsed fragment into the Parser's shared
// state, reporting an overlap error for Blocks.txt/UnicodeData.txt
// lines that collide with data already merged. Must run
// single-threaded: it is the only part of fragment processing that
// touches shared state.
func (p *Parser) mergeFragment(frag *fragment) error {
	for _, line := range frag.blockLines {
		fields := blockRangeFields.Split(line, -1)
		if len(fields) < 2 {
			continue
		}
		bs, err := strconv.ParseInt(fields[0], 16, 32)
		if err != nil {
			continue
		}
		be, err := strconv.ParseInt(fields[1], 16, 32)
		if err != nil {
			continue
		}
		if p.blockBits.GetAny(int(bs), int(be)) {
			return &ErrOverlap{FileName: "Blocks.txt", Line: line}
		}
		p.blockBits.SetAll(int(bs), int(be))
		p.blockLines = append(p.blockLines, line)
	}
	for _, line := range frag.charLines {
		fields := strings.Split(line, ";")
		ch, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 16, 32)
		if err != nil {
			continue
		}
		if p.charBits.Get(int(ch)) {
			return &ErrOverlap{FileName: "UnicodeData.txt", Line: line}
		}
		p.charBits.Set(int(ch))
		p.charLines = append(p.charLines, line)
	}
	for fileName, lines := range frag.otherLines {
		p.fileLines[fileName] = append(p.fileLines[fileName], lines...)
	}
	if frag.included {
		p.matchedFiles = append(p.matchedFiles, MatchedFile{
			Path:       frag.path,
			Flags:      frag.flags,
			Substrings: frag.substrings,
		})
	}
	return nil
}

// ProcessFile parses and merges a single explicitly named fragment
// file. forced mirrors udparser.py's processFile(file, matchesFile)
// called with matchesFile=True for files named directly on the
// command line.
func (p *Parser) ProcessFile(path string, forced bool) error {
	frag, err := p.parseFile(path, forced)
	if err != nil {
		return err
	}
	return p.mergeFragment(frag)
}

// ScanDir parses every file in dir concurrently (at most GOMAXPROCS
// goroutines at a time) and then merges the
// resulting fragments into the Parser's shared state single-threaded,
// in a deterministic (sorted by path) order so overlap errors are
// reproducible regardless of goroutine scheduling.
func (p *Parser) ScanDir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	fragments := make([]*fragment, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			frag, err := p.parseFile(path, false)
			if err != nil {
				return err
			}
			fragments[i] = frag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, frag := range fragments {
		if err := p.mergeFragment(frag); err != nil {
			return err
		}
	}
	return nil
}

// BlockLines returns merged Blocks.txt lines sorted by starting code
// point, as printBlocks does.
func (p *Parser) BlockLines() []string {
	lines := append([]string(nil), p.blockLines...)
	sort.Slice(lines, func(i, j int) bool {
		return blockStart(lines[i]) < blockStart(lines[j])
	})
	return lines
}

func blockStart(line string) int64 {
	fields := blockRangeFields.Split(line, -1)
	n, _ := strconv.ParseInt(fields[0], 16, 32)
	return n
}

// CharLines returns merged UnicodeData.txt lines sorted by code point,
// as printUnicodeData does.
func (p *Parser) CharLines() []string {
	lines := append([]string(nil), p.charLines...)
	sort.Slice(lines, func(i, j int) bool {
		return charCodePoint(lines[i]) < charCodePoint(lines[j])
	})
	return lines
}

func charCodePoint(line string) int64 {
	fields := strings.SplitN(line, ";", 2)
	n, _ := strconv.ParseInt(strings.TrimSpace(fields[0]), 16, 32)
	return n
}

// FileLines returns the merged lines accumulated for fileName (any
// file other than Blocks.txt/UnicodeData.txt), in the order fragments
// contributed them.
func (p *Parser) FileLines(fileName string) []string {
	switch fileName {
	case "Blocks.txt":
		return p.BlockLines()
	case "UnicodeData.txt":
		return p.CharLines()
	default:
		return p.fileLines[fileName]
	}
}

// FileNames returns every non-Blocks/UnicodeData file name that has
// merged content, sorted.
func (p *Parser) FileNames() []string {
	names := make([]string, 0, len(p.fileLines))
	for name := range p.fileLines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MatchedFiles returns every fragment file that was included, sorted
// by path, as printMatchedFiles/printMatchedFlags do.
func (p *Parser) MatchedFiles() []MatchedFile {
	matched := append([]MatchedFile(nil), p.matchedFiles...)
	sort.Slice(matched, func(i, j int) bool { return matched[i].Path < matched[j].Path })
	return matched
}
