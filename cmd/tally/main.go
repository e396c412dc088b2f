// Tally CLI — command-line interface for one-shot and interactive
// expression evaluation.
//
// Usage:
//
//	tally <command> [flags]
//
// Commands:
//
//	eval      Evaluate an expression and print the result
//	repl      Interactive read-evaluate-print loop
//	version   Print version information
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tallycalc/tally/internal/engine"
	"github.com/tallycalc/tally/pkg/numfmt"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "eval":
		cmdEval()
	case "repl":
		cmdRepl()
	case "version":
		fmt.Printf("Tally v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Tally — a left-to-right desk calculator

Usage:
  tally <command> [flags]

Commands:
  eval       Evaluate an expression: tally eval "2 + 3 * 4"
  repl       Interactive read-evaluate-print loop
  version    Print version information

Expressions chain strictly left to right with no precedence,
matching the on-screen calculator (tally-tui).

Run 'tally <command> --help' for details on each command.`)
}

// cmdEval evaluates the joined arguments as one expression.
func cmdEval() {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	explain := fs.Bool("explain", false, "Print the underlying error on failure")
	fs.Parse(os.Args[2:])

	expr := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(expr) == "" {
		fmt.Fprintln(os.Stderr, "Error: an expression is required")
		fs.Usage()
		os.Exit(1)
	}

	n, err := engine.Evaluate(expr)
	if err != nil {
		if *explain {
			fmt.Fprintf(os.Stderr, "%s (%v)\n", engine.ErrorDisplay, err)
		} else {
			fmt.Fprintln(os.Stderr, engine.ErrorDisplay)
		}
		os.Exit(1)
	}
	fmt.Println(numfmt.Format(n))
}

// cmdRepl reads one expression per line and prints each result.
// Evaluation errors print the error token and the loop continues.
func cmdRepl() {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	fs.Parse(os.Args[2:])

	fmt.Println("Tally REPL — left-to-right evaluation, no precedence. \"quit\" to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("tally> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return
		}

		n, err := engine.Evaluate(line)
		if err != nil {
			fmt.Println(engine.ErrorDisplay)
			continue
		}
		fmt.Println(numfmt.Format(n))
	}
}
