package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kreativekorp/openrelay-tools/puaa"
	"github.com/kreativekorp/openrelay-tools/sfnt"
)

// puaaScalerType is the scaler type written for a container built from
// scratch, when no source font is being copied from. A PUAA-only
// file uses its own tag as the scaler type, the same convention
// writePUAA in the reference tool follows.
var puaaScalerType = sfnt.MakeTag(sfnt.TagPUAA).Uint32()

// readPUAATable opens path as an sfnt container and decompiles its
// PUAA table, if any. A missing PUAA table is not an error: it
// returns (nil, nil), mirroring readPUAA's "Warning: No PUAA table
// found" case.
func readPUAATable(path string, verbose bool) (*puaa.Table, error) {
	if verbose {
		fmt.Fprintf(os.Stderr, "Decompiling from %s...\n", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := sfnt.Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	raw, err := c.Find(sfnt.TagPUAA)
	if err != nil {
		if sfnt.IsMissing(err) {
			if verbose {
				fmt.Fprintln(os.Stderr, "Warning: No PUAA table found.")
			}
			return nil, nil
		}
		return nil, err
	}
	return puaa.Decompile(raw)
}

// writePUAAFont copies every table other than PUAA from inPath (if
// given) into a new container, installs table as its PUAA table (if
// given), and writes the result to outPath. Either inPath or table may
// be empty/nil: an empty inPath starts from an empty container (a
// PUAA-only file); a nil table produces a font with its PUAA table
// removed, the way the strip command does.
func writePUAAFont(inPath string, table *puaa.Table, outPath string, verbose bool) error {
	var c *sfnt.Container
	if inPath != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "Copying tables from %s...\n", filepath.Base(inPath))
		}
		data, err := os.ReadFile(inPath)
		if err != nil {
			return err
		}
		c, err = sfnt.Read(data)
		if err != nil {
			return fmt.Errorf("%s: %w", inPath, err)
		}
		c.Strip(sfnt.TagPUAA)
	} else {
		c = &sfnt.Container{ScalerType: puaaScalerType, Tables: make(map[string][]byte)}
	}

	if table != nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Compiling PUAA table...")
		}
		if err := c.Replace(sfnt.TagPUAA, table.Compile()); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Compiling to %s...\n", filepath.Base(outPath))
	}
	out, err := c.Write()
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}

// ifExists returns path if it names an existing file, or "" otherwise,
// mirroring ifExists in the reference tool: a destination that does
// not exist yet is not a source of tables to copy.
func ifExists(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
