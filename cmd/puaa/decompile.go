package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kreativekorp/openrelay-tools/ucd"
)

func cmdDecompile(args []string) int {
	fs := flag.NewFlagSet("decompile", flag.ExitOnError)
	var inputFiles, outputFiles stringList
	fs.Var(&inputFiles, "i", "source font (repeatable)")
	fs.Var(&outputFiles, "o", "destination directory (repeatable)")
	quiet := fs.Bool("q", false, "suppress progress messages")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: puaa decompile -i <path> [-i <path> ...] [-o <dir>]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Creates UCD text files from the PUAA table in a TrueType/OpenType file.")
		fmt.Fprintln(os.Stderr, "Bare trailing arguments are treated as additional -i source fonts.")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	inputFiles = append(inputFiles, fs.Args()...)
	verbose := !*quiet

	if len(inputFiles) == 0 {
		fmt.Fprintln(os.Stderr, "puaa decompile: no input files specified")
		fs.Usage()
		return 1
	}
	if len(outputFiles) == 0 {
		outputFiles = stringList{"puaa.d"}
	}

	reg := ucd.NewRegistry()
	switch {
	case len(inputFiles) == 1:
		table, err := readPUAATable(inputFiles[0], verbose)
		if err != nil {
			fmt.Fprintf(os.Stderr, "puaa decompile: %v\n", err)
			return 1
		}
		if table == nil {
			return 0
		}
		for _, dst := range outputFiles {
			if err := decompileUCD(reg, table, dst, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa decompile: %v\n", err)
				return 1
			}
		}
	case len(outputFiles) == 1:
		for _, in := range inputFiles {
			table, err := readPUAATable(in, verbose)
			if err != nil {
				fmt.Fprintf(os.Stderr, "puaa decompile: %v\n", err)
				return 1
			}
			if table == nil {
				continue
			}
			if err := decompileUCD(reg, table, outputFiles[0], verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa decompile: %v\n", err)
				return 1
			}
		}
	default:
		if len(inputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa decompile: too many input files")
		}
		if len(outputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa decompile: too many output directories")
		}
		return 1
	}
	return 0
}
