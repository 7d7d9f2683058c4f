// Package main provides a command line front end for the prompt forms,
// for use from shell scripts.
//
// Usage:
//
//	prompt multiselect [flags] [item...]   Pick several items
//	prompt select [flags] [item...]        Pick one item
//	prompt confirm [flags]                 Ask a yes/no question
//	prompt input [flags]                   Ask for a line of text
//
// Items are read one per line from stdin when none are given as arguments.
// Answers are printed to stdout, one per line. The form itself is drawn on stderr.
package main

import (
	"errors"
	"fmt"
	"os"

	prompt "github.com/grindlemire/go-prompt"
	"github.com/grindlemire/go-prompt/internal/debug"
)

const version = "0.1.0"

// exitCanceled is the shell convention for termination by Ctrl+C.
const exitCanceled = 130

const usage = `prompt - interactive terminal prompts for shell scripts

Usage:
  prompt <command> [options] [item...]

Commands:
  multiselect   Pick any number of items
  select        Pick one item
  confirm       Ask a yes/no question
  input         Ask for a line of text
  version       Print version information
  help          Show this help message

Common options:
  -m, -message string   Question to ask (required)
  -debug string         Append debug logs to this file (or set PROMPT_DEBUG)

Examples:
  prompt multiselect -m "Services" -min 1 -max 2 api web worker
  ls | prompt select -m "Open which file?"
  prompt confirm -m "Deploy?" -default=yes
  prompt input -m "Name" -required

Exit status is 130 when the prompt is canceled with Esc or Ctrl+C.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "multiselect":
		err = runMultiSelect(args)
	case "select":
		err = runSelect(args)
	case "confirm":
		err = runConfirm(args)
	case "input":
		err = runInput(args)
	case "version":
		fmt.Printf("prompt version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	debug.Close()

	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrCanceled):
		os.Exit(exitCanceled)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
