/*
File    : interpreter/main/main.go
Package   main
*/

// Package main is the entry point for the interpreter. It supports
// two modes of operation:
//  1. REPL mode (default): an interactive read-eval-print loop
//  2. File mode: execute a single Monkey source file given as an
//     argument
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/monkeylang/interpreter/evaluator"
	"github.com/monkeylang/interpreter/lexer"
	"github.com/monkeylang/interpreter/object"
	"github.com/monkeylang/interpreter/parser"
	"github.com/monkeylang/interpreter/repl"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches to file execution or the interactive REPL:
//
//	monkey                - start the REPL
//	monkey <path>         - execute a Monkey source file
//	monkey --help|-h      - display usage
//	monkey --version|-v   - display version
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.New()
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("monkey - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  monkey                 Start interactive REPL mode")
	yellowColor.Println("  monkey <path-to-file>  Execute a Monkey source file")
	yellowColor.Println("  monkey --help          Display this help message")
	yellowColor.Println("  monkey --version       Display version information")
}

func showVersion() {
	cyanColor.Println("monkey - a small expression-oriented scripting language")
	cyanColor.Println("Version: 0.1.0")
}

// runFile reads source from path and executes it in a fresh
// environment, exiting with a non-zero status on a file, parse, or
// runtime error.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(source))
}

// executeFileWithRecovery parses and evaluates source, recovering
// from any panic so a bug in the interpreter surfaces as a message
// rather than a raw Go stack trace.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	par := parser.New(lexer.New(source))
	program := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)

	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	if result.Type() != object.NULL_OBJ {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
