// Command puaa manipulates Unicode Character Database properties
// embedded in the PUAA table of TrueType/OpenType font files.
package main

import (
	"fmt"
	"os"
)

func printHelp() {
	fmt.Println()
	fmt.Println("puaa - Manipulate Unicode Character Database properties in TrueType files.")
	fmt.Println()
	fmt.Println("  puaa compile <args>   - Add UCD properties to a TrueType/OpenType file.")
	fmt.Println("  puaa decompile <args> - Create UCD files from a TrueType/OpenType file.")
	fmt.Println("  puaa copy <args>      - Copy UCD properties across TrueType/OpenType files.")
	fmt.Println("  puaa strip <args>     - Remove UCD properties from a TrueType/OpenType file.")
	fmt.Println("  puaa lookup <args>    - Look up UCD properties in a TrueType/OpenType file.")
	fmt.Println("  puaa verify <args>    - Check that a file's PUAA table round-trips cleanly.")
	fmt.Println()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printHelp()
		return 1
	}
	command, rest := args[0], args[1:]
	switch command {
	case "help", "-h", "--help":
		printHelp()
		return 0
	case "compile":
		return cmdCompile(rest)
	case "decompile":
		return cmdDecompile(rest)
	case "copy":
		return cmdCopy(rest)
	case "strip":
		return cmdStrip(rest)
	case "lookup":
		return cmdLookup(rest)
	case "verify":
		return cmdVerify(rest)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printHelp()
		return 1
	}
}
