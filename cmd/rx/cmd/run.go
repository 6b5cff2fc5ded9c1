package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rx-lang/rx/internal/ast"
	"github.com/rx-lang/rx/internal/interp"
	"github.com/rx-lang/rx/internal/lexer"
	"github.com/rx-lang/rx/internal/parser"
	"github.com/rx-lang/rx/internal/stdlib"
)

// runFile implements file mode per spec.md §6.1: the path must end in
// .rx, the file is tokenized, parsed, and interpreted, and any load,
// parse, or evaluation failure exits 1.
func runFile(path string) error {
	if !strings.HasSuffix(path, ".rx") {
		exitWithError("file %q must have a .rx extension", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		exitWithError("cannot read %s: %s", path, err)
	}

	program, err := parseSource(string(content))
	if err != nil {
		exitWithError("%s", err)
	}

	rt := newInterpreter(os.Stdin, os.Stdout)
	if err := rt.Interpret(program, os.Stderr); err != nil {
		os.Exit(1)
	}
	return nil
}

// parseSource runs the lexer and parser over source, returning the
// combined parse error (if any) as a single formatted error.
func parseSource(source string) (*ast.Program, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		var sb strings.Builder
		for _, e := range errs {
			fmt.Fprintf(&sb, "%s\n", e)
		}
		return nil, fmt.Errorf("parsing failed with %d error(s):\n%s", len(errs), sb.String())
	}
	return program, nil
}

// newInterpreter builds an Interpreter with every bundled library
// registered (but not imported — scripts still need `^name` per
// spec.md §4.3.5 to make a library's exports visible to call
// resolution).
func newInterpreter(in io.Reader, out io.Writer) *interp.Interpreter {
	rt := interp.New(out, interp.WithInput(in))
	rt.AddLibrary(stdlib.Math(rt))
	rt.AddLibrary(stdlib.Colors(rt))
	rt.AddLibrary(stdlib.Time())
	return rt
}
