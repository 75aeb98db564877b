package main

import (
	"flag"
	"fmt"
	"os"
)

func cmdCopy(args []string) int {
	fs := flag.NewFlagSet("copy", flag.ExitOnError)
	var dataFiles, inputFiles, outputFiles stringList
	fs.Var(&dataFiles, "d", "source font to copy character properties from")
	fs.Var(&inputFiles, "i", "source font to copy other tables from (repeatable)")
	fs.Var(&outputFiles, "o", "destination font (repeatable)")
	quiet := fs.Bool("q", false, "suppress progress messages")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: puaa copy -d <path> [-i <path>] [-o <path>]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Copies a PUAA table across TrueType/OpenType files without touching UCD text.")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	verbose := !*quiet

	if len(dataFiles) == 0 {
		fmt.Fprintln(os.Stderr, "puaa copy: no data files specified")
		fs.Usage()
		return 1
	}
	if len(dataFiles) > 1 {
		fmt.Fprintln(os.Stderr, "puaa copy: too many data files")
		return 1
	}

	table, err := readPUAATable(dataFiles[0], verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "puaa copy: %v\n", err)
		return 1
	}

	switch {
	case len(inputFiles) == 0 && len(outputFiles) == 0:
		if err := writePUAAFont(ifExists("puaa.out"), table, "puaa.out", verbose); err != nil {
			fmt.Fprintf(os.Stderr, "puaa copy: %v\n", err)
			return 1
		}
	case len(inputFiles) == 1 && len(outputFiles) == 1:
		if err := writePUAAFont(inputFiles[0], table, outputFiles[0], verbose); err != nil {
			fmt.Fprintf(os.Stderr, "puaa copy: %v\n", err)
			return 1
		}
	case len(inputFiles) == 0 || len(outputFiles) == 0:
		for _, file := range inputFiles {
			if err := writePUAAFont(ifExists(file), table, file, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa copy: %v\n", err)
				return 1
			}
		}
		for _, file := range outputFiles {
			if err := writePUAAFont(ifExists(file), table, file, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa copy: %v\n", err)
				return 1
			}
		}
	default:
		if len(inputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa copy: too many input files")
		}
		if len(outputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa copy: too many output files")
		}
		return 1
	}
	return 0
}
