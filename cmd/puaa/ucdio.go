package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kreativekorp/openrelay-tools/puaa"
	"github.com/kreativekorp/openrelay-tools/ucd"
)

// compileUCD walks paths (files or directories, recursively, skipping
// dot-files) and compiles every recognized UCD file it finds into a
// fresh Table, mirroring compilePUAA. A file named directly on the
// command line whose basename has no registered codec is a hard
// error; a file discovered while walking a directory is silently
// skipped, per spec's "unrecognized filenames in a directory scan are
// ignored" policy.
func compileUCD(reg *ucd.Registry, paths []string, verbose bool) (*puaa.Table, error) {
	table := puaa.New()
	for _, p := range paths {
		if err := compilePath(reg, table, p, true, verbose); err != nil {
			return nil, err
		}
	}
	return table, nil
}

func compilePath(reg *ucd.Registry, table *puaa.Table, path string, explicit, verbose bool) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			if err := compilePath(reg, table, filepath.Join(path, name), false, verbose); err != nil {
				return err
			}
		}
		return nil
	}

	codec := reg.Lookup(filepath.Base(path))
	if codec == nil {
		if explicit {
			return fmt.Errorf("puaa: unrecognized UCD file: %s", path)
		}
		return nil
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Compiling from %s...\n", codec.FileName())
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return codec.Compile(table, f)
}

// decompileUCD writes every UCD file that table has data for into dst,
// creating the directory if needed. Each codec is tried in turn;
// the first of its property names with a populated subtable triggers
// writing that codec's file, mirroring decompilePUAA.
func decompileUCD(reg *ucd.Registry, table *puaa.Table, dst string, verbose bool) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	for _, codec := range reg.Codecs() {
		populated := false
		for _, name := range codec.PropertyNames() {
			if st := table.Subtable(name, false); st != nil && len(st.Entries) > 0 {
				populated = true
				break
			}
		}
		if !populated {
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Decompiling to %s...\n", codec.FileName())
		}
		if err := writeCodecFile(codec, table, filepath.Join(dst, codec.FileName())); err != nil {
			return err
		}
	}
	return nil
}

func writeCodecFile(codec ucd.Codec, table *puaa.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = codec.Decompile(table, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
