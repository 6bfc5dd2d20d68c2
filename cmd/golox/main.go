/*
File    : golox/cmd/golox/main.go
Package : main
*/

/*
Command golox is the CLI entry point. It hand-rolls its os.Args parse
the way the teacher's main.go does (no CLI-flag library appears
anywhere in the pack), dispatching to the golox pipeline facade for
one of the four modes spec.md §6 names, or dropping into the
interactive REPL when invoked with no arguments.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/golox"
	"github.com/akashmaji946/golox/replmode"
	"github.com/fatih/color"
)

var redColor = color.New(color.FgRed)

func usage() {
	redColor.Fprintln(os.Stderr, "Usage: golox [tokenize|parse|evaluate|run] <path>")
	redColor.Fprintln(os.Stderr, "       golox                 (start the interactive REPL)")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		replmode.New().Start(os.Stdin, os.Stdout)
		return golox.ExitSuccess
	}

	if len(args) != 2 {
		usage()
		return golox.ExitUsage
	}

	mode, path := args[0], args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return golox.ExitUsage
	}
	src := string(data)

	switch mode {
	case "tokenize":
		return golox.Tokenize(src, os.Stdout, os.Stderr)
	case "parse":
		return golox.Parse(src, os.Stdout, os.Stderr)
	case "evaluate":
		return golox.Evaluate(src, os.Stdout, os.Stderr)
	case "run":
		return golox.Run(src, os.Stdout, os.Stderr)
	default:
		usage()
		fmt.Fprintf(os.Stderr, "Unknown mode '%s'.\n", mode)
		return golox.ExitUsage
	}
}
