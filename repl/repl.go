// Package repl implements Kira's interactive shell: a readline-backed
// loop that evaluates one line at a time against a persistent
// environment, echoing results the way the language's original Python
// REPL and its teacher's Go-Mix REPL both do.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/limem01/kira-lang/eval"
	"github.com/limem01/kira-lang/lexer"
	"github.com/limem01/kira-lang/object"
	"github.com/limem01/kira-lang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl instance with the given banner and prompt text.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Kira!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or input ends. Every
// line is evaluated against the same Environment, so declarations and
// mutations from earlier lines remain visible (the same single-Evaluator
// pattern the teacher's REPL uses, here backed by Kira's evaluator).
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(out, "cannot start readline: %v\n", err)
		return
	}
	defer rl.Close()

	ev := eval.New(out, in)
	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			out.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			out.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(out, line, ev, env)
	}
}

// evalLine lexes, parses, and evaluates one line against env, printing
// its result or error, then always returns control to the prompt — the
// REPL never aborts on error the way one-shot file execution does.
func (r *Repl) evalLine(out io.Writer, line string, ev *eval.Evaluator, env *object.Environment) {
	tokens, err := lexer.Tokenize(line)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err)
		return
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err)
		return
	}
	result, err := ev.Run(program, env)
	if err != nil {
		redColor.Fprintf(out, "%s\n", err)
		return
	}
	if _, isNull := result.(object.Null); !isNull {
		yellowColor.Fprintf(out, "%s\n", result.Repr())
	}
}
