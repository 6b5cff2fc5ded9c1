package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	promptColor = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
)

// runInteractive implements `rx -i` per spec.md §6.1: a persistent
// interpreter evaluates one line at a time behind an "rx> " prompt,
// exits on the literal input "exit", skips empty lines, and reports
// evaluation errors without ending the session.
func runInteractive(in *os.File, out io.Writer) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: promptColor.Sprint("rx> "),
	})
	if err != nil {
		exitWithError("cannot start interactive session: %s", err)
	}
	defer rl.Close()

	rt := newInterpreter(in, out)

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		rl.SaveHistory(line)

		program, err := parseSource(line)
		if err != nil {
			errorColor.Fprintf(out, "%s\n", err)
			continue
		}
		_ = rt.Interpret(program, out)
	}
}
