package interp

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/rx-lang/rx/internal/rxerr"
	"github.com/rx-lang/rx/internal/token"
)

// newSystemLibrary builds the always-available system primitives:
// print, ifu (read-line), and ec (shell, value-returning variant).
// Unlike imported libraries, these never need `^`: spec.md §2/§4.3.2
// resolves them first, unconditionally.
func (i *Interpreter) newSystemLibrary() Library {
	return NewLibrary("system", map[string]NativeFunc{
		"print": i.builtinPrint,
		"ifu":   i.builtinReadLine,
		"ec":    i.builtinShell,
	})
}

func (i *Interpreter) builtinPrint(args []Value) (Value, error) {
	parts := make([]string, len(args))
	for idx, a := range args {
		parts[idx] = a.ToString()
	}
	fmt.Fprintln(i.output, strings.Join(parts, " "))
	return Number(0), nil
}

func (i *Interpreter) builtinReadLine(args []Value) (Value, error) {
	if len(args) > 0 {
		fmt.Fprint(i.output, args[0].ToString())
	}
	reader := i.bufferedInput()
	if reader == nil {
		return Value{}, rxerr.InvalidArgument(token.Position{}, "ifu() requires an input source")
	}
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return String(""), nil
	}
	return String(strings.TrimRight(line, "\r\n")), nil
}

// builtinShell is `ec(cmd)` used as an expression: run cmd via the
// host shell and return its exit status as a Number, per spec.md
// §4.3.6's "value-returning variant" note (confirmed against
// original_source/src/libraries/system/SystemLibrary.cpp).
func (i *Interpreter) builtinShell(args []Value) (Value, error) {
	if len(args) != 1 {
		return Value{}, rxerr.ArityMismatch(token.Position{}, "ec", 1, len(args))
	}
	cmd := exec.Command("sh", "-c", args[0].ToString())
	cmd.Stdout = i.output
	cmd.Stderr = i.output
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return Number(float64(exitErr.ExitCode())), nil
		}
		return Number(-1), nil
	}
	return Number(0), nil
}
