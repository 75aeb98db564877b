package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kreativekorp/openrelay-tools/ucd"
)

func cmdCompile(args []string) int {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	var dataFiles, inputFiles, outputFiles stringList
	fs.Var(&dataFiles, "d", "UCD data file or directory (repeatable)")
	fs.Var(&inputFiles, "i", "source font to copy other tables from (repeatable)")
	fs.Var(&outputFiles, "o", "destination font (repeatable)")
	quiet := fs.Bool("q", false, "suppress progress messages")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: puaa compile -d <path> [-d <path> ...] [-i <path>] [-o <path>]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Adds Unicode Character Database properties to a TrueType/OpenType file.")
		fmt.Fprintln(os.Stderr, "Bare trailing arguments are treated as additional -d data files.")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	dataFiles = append(dataFiles, fs.Args()...)
	verbose := !*quiet

	if len(dataFiles) == 0 {
		fmt.Fprintln(os.Stderr, "puaa compile: no data files specified")
		fs.Usage()
		return 1
	}

	table, err := compileUCD(ucd.NewRegistry(), dataFiles, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "puaa compile: %v\n", err)
		return 1
	}

	switch {
	case len(inputFiles) == 0 && len(outputFiles) == 0:
		if err := writePUAAFont(ifExists("puaa.out"), table, "puaa.out", verbose); err != nil {
			fmt.Fprintf(os.Stderr, "puaa compile: %v\n", err)
			return 1
		}
	case len(inputFiles) == 1 && len(outputFiles) == 1:
		if err := writePUAAFont(inputFiles[0], table, outputFiles[0], verbose); err != nil {
			fmt.Fprintf(os.Stderr, "puaa compile: %v\n", err)
			return 1
		}
	case len(inputFiles) == 0 || len(outputFiles) == 0:
		for _, file := range inputFiles {
			if err := writePUAAFont(ifExists(file), table, file, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa compile: %v\n", err)
				return 1
			}
		}
		for _, file := range outputFiles {
			if err := writePUAAFont(ifExists(file), table, file, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa compile: %v\n", err)
				return 1
			}
		}
	default:
		if len(inputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa compile: too many input files")
		}
		if len(outputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa compile: too many output files")
		}
		return 1
	}
	return 0
}
