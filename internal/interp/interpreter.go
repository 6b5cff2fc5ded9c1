// Package interp walks an rx AST and executes it: it owns the flat
// Environment, the user function table, the registered libraries and
// the imported-libraries set, and the save-slot side channel, dispatching calls
// through the Library Registry described in spec.md §2.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/rx-lang/rx/internal/ast"
)

// Interpreter executes rx AST nodes against a single, flat runtime
// environment. It is not safe for concurrent use — spec.md §5 scopes
// concurrent script execution out entirely.
type Interpreter struct {
	env         *Environment
	slots       *saveSlots
	functions   map[string]*FunctionRecord
	system      Library
	libraries   map[string]Library
	importOrder []string

	output      io.Writer
	input       io.Reader
	inputReader *bufio.Reader
	rand        *rand.Rand

	returning   bool
	returnValue Value
	anonCounter int
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithInput sets the reader consulted by the system library's ifu()
// (read-line) builtin. Defaults to nil, in which case ifu() reports an
// InvalidArgument error rather than blocking forever.
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) { i.input = r }
}

// WithLibrary registers an optional standard library without importing
// it; the program must still issue `^name` before its exports are
// visible to the call resolver (spec.md §2, §4.3.2).
func WithLibrary(lib Library) Option {
	return func(i *Interpreter) { i.libraries[lib.Name()] = lib }
}

// AddLibrary registers a library built after construction (the math
// and colors libraries need the Interpreter itself, for Rand() and
// Output(), so
// they can't be supplied as an Option to New).
func (i *Interpreter) AddLibrary(lib Library) {
	i.libraries[lib.Name()] = lib
}

// New creates an Interpreter that writes builtin output to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		env:       NewEnvironment(),
		slots:     newSaveSlots(),
		functions: make(map[string]*FunctionRecord),
		libraries: make(map[string]Library),
		output:    out,
		rand:      rand.New(rand.NewSource(1)),
	}
	i.system = i.newSystemLibrary()
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Rand exposes the interpreter-local random source so the math
// library's random() builtin stays confined per-instance rather than
// sharing Go's global rand state (spec.md §9's note on confining
// mutable global state to a single interpreter instance).
func (i *Interpreter) Rand() *rand.Rand { return i.rand }

// Output returns the writer builtins should write to.
func (i *Interpreter) Output() io.Writer { return i.output }

// Input returns the reader ifu() should read from, or nil.
func (i *Interpreter) Input() io.Reader { return i.input }

// bufferedInput lazily wraps the configured input reader in a single,
// reused bufio.Reader so consecutive ifu() calls don't discard bytes
// buffered past the newline of a prior read.
func (i *Interpreter) bufferedInput() *bufio.Reader {
	if i.inputReader == nil && i.input != nil {
		i.inputReader = bufio.NewReader(i.input)
	}
	return i.inputReader
}

// Interpret walks Program top to bottom, catching any evaluation error
// and reporting it to stderr with the "Runtime error:" prefix spec.md
// §6.3/§7 specify; it always returns control to the caller afterwards
// so a REPL can continue to the next line.
func (i *Interpreter) Interpret(program *ast.Program, stderr io.Writer) error {
	if err := i.execBlock(program.Statements); err != nil {
		fmt.Fprintf(stderr, "Runtime error: %s\n", err.Error())
		return err
	}
	return nil
}

// Import adds a library to the imported set, gating its exports as
// visible to the call resolver from this point on (spec.md §4.3.5).
// Importing an unknown library name is silently accepted: the program
// simply never resolves any call to it, since there is nothing to gate.
func (i *Interpreter) Import(name string) {
	if _, ok := i.libraries[name]; !ok {
		return
	}
	for _, seen := range i.importOrder {
		if seen == name {
			return
		}
	}
	i.importOrder = append(i.importOrder, name)
}
