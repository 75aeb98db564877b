package main

import (
	"flag"
	"fmt"
	"os"
)

func cmdStrip(args []string) int {
	fs := flag.NewFlagSet("strip", flag.ExitOnError)
	var inputFiles, outputFiles stringList
	fs.Var(&inputFiles, "i", "source font (repeatable)")
	fs.Var(&outputFiles, "o", "destination font (repeatable)")
	quiet := fs.Bool("q", false, "suppress progress messages")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: puaa strip -i <path> [-o <path>]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Removes the PUAA table from a TrueType/OpenType file.")
		fmt.Fprintln(os.Stderr, "Source and destination may be the same file.")
		fs.PrintDefaults()
	}
	fs.Parse(args)
	inputFiles = append(inputFiles, fs.Args()...)
	verbose := !*quiet

	if len(inputFiles) == 0 && len(outputFiles) == 0 {
		fmt.Fprintln(os.Stderr, "puaa strip: no input files specified")
		fs.Usage()
		return 1
	}

	switch {
	case len(inputFiles) == 1 && len(outputFiles) == 1:
		if err := writePUAAFont(inputFiles[0], nil, outputFiles[0], verbose); err != nil {
			fmt.Fprintf(os.Stderr, "puaa strip: %v\n", err)
			return 1
		}
	case len(inputFiles) == 0 || len(outputFiles) == 0:
		for _, file := range inputFiles {
			if err := writePUAAFont(file, nil, file, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa strip: %v\n", err)
				return 1
			}
		}
		for _, file := range outputFiles {
			if err := writePUAAFont(file, nil, file, verbose); err != nil {
				fmt.Fprintf(os.Stderr, "puaa strip: %v\n", err)
				return 1
			}
		}
	default:
		if len(inputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa strip: too many input files")
		}
		if len(outputFiles) > 1 {
			fmt.Fprintln(os.Stderr, "puaa strip: too many output files")
		}
		return 1
	}
	return 0
}
