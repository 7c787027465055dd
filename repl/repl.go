/*
File    : interpreter/repl/repl.go
Package   repl
*/

// Package repl implements the interactive Read-Eval-Print Loop for the
// interpreter: a persistent environment, line editing and history via
// chzyer/readline, and colorized output via fatih/color.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/monkeylang/interpreter/evaluator"
	"github.com/monkeylang/interpreter/lexer"
	"github.com/monkeylang/interpreter/object"
	"github.com/monkeylang/interpreter/parser"
)

// Color definitions for REPL output: blue for separators, green for
// the banner, yellow for results, cyan for informational text, red
// for errors.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  __  __             _
 |  \/  | ___  _ __  | | _____ _   _
 | |\/| |/ _ \| '_ \ | |/ / _ \ | | |
 | |  | | (_) | | | ||   <  __/ |_| |
 |_|  |_|\___/|_| |_||_|\_\___|\__, |
                                |___/
`

const separatorLine = "----------------------------------------"

// Repl is a configured REPL session. The zero value is not usable —
// construct one with New.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl ready to Start.
func New() *Repl {
	return &Repl{
		Banner:  banner,
		Version: "0.1.0",
		Prompt:  "monkey >> ",
	}
}

// PrintBannerInfo writes the startup banner and basic usage
// instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", separatorLine)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", separatorLine)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", separatorLine)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit' or '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", separatorLine)
}

// Start runs the REPL main loop over a single persistent environment,
// until the user exits or EOF is reached (Ctrl+D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		if line == "" {
			continue
		}

		if line == "exit" || line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, env)
	}
}

// executeWithRecovery parses and evaluates a single line, recovering
// from any panic so one bad line never brings down the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.New(lexer.New(line))
	program := par.Parse()

	if par.HasErrors() {
		redColor.Fprintf(writer, "Woops! We ran into some monkey business here!\n")
		redColor.Fprintf(writer, " parser errors:\n")
		for _, msg := range par.Errors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
