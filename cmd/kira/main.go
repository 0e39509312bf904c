// Command kira is the CLI driver for the Kira interpreter: the external
// collaborator spec.md §1 excludes from the core (argument parsing,
// file loading, exit-code mapping). It mirrors original_source/kira.py's
// three modes, dressed in the teacher's colorized-output style.
package main

import (
	"os"

	"github.com/fatih/color"
	kira "github.com/limem01/kira-lang"
	"github.com/limem01/kira-lang/repl"
)

const (
	version = "v1.0.0"
	author  = "limem01"
	license = "MIT"
	prompt  = "kira >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
  _  ___           _
 | |/ (_)_ __ __ _ | |
 | ' /| | '__/ _  || |
 | . \| | | | (_| ||_|
 |_|\_\_|_|  \__,_|(_)
`
)

var redColor = color.New(color.FgRed)

func main() {
	evalFlag := ""
	args := os.Args[1:]
	var fileArg string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-e", "--eval":
			if i+1 >= len(args) {
				redColor.Fprintln(os.Stderr, "Internal Error: -e requires a CODE argument")
				os.Exit(1)
			}
			evalFlag = args[i+1]
			i++
		case "-v", "--version":
			color.New(color.FgCyan).Println("Kira " + version)
			os.Exit(0)
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		default:
			fileArg = args[i]
		}
	}

	switch {
	case evalFlag != "":
		os.Exit(kira.Run(evalFlag, os.Stdout, os.Stdin))
	case fileArg != "":
		runFile(fileArg)
	default:
		r := repl.New(banner, version, author, line, license, prompt)
		r.Start(os.Stdin, os.Stdout)
	}
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Internal Error: could not read file %q: %v\n", path, err)
		os.Exit(1)
	}
	os.Exit(kira.Run(string(source), os.Stdout, os.Stdin))
}

func printHelp() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	cyan.Println("Kira - A small expression-oriented scripting language")
	cyan.Println("")
	cyan.Println("USAGE:")
	yellow.Println("  kira                  Start interactive REPL")
	yellow.Println("  kira <path>           Run a Kira script file")
	yellow.Println("  kira -e \"CODE\"        Evaluate a code string")
	yellow.Println("  kira --version        Display version information")
	yellow.Println("  kira --help           Display this help message")
}
